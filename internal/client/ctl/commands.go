package ctl

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/backoffice/internal/client/resource"
)

func newListCmd(a *app) *cobra.Command {
	var page, size int
	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List one page of records",
		Example: `  backofficectl list task
  backofficectl list employee --page 2 --size 10 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return usageErrorf("--page must be at least 1")
			}
			k, err := a.kind(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if size <= 0 {
				size = k.Snapshot().PageSize
			}
			k.ChangePage(resource.PageEvent{Index: page - 1, Size: size})
			return a.writeRows(cmd.OutOrStdout(), k.Columns(), k.Snapshot().Rows)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&size, "size", 0, "records per page (default: configured page size)")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <kind> <text>",
		Short: "Show up to 5 records whose search field starts with text",
		Long: `Search matches the beginning of the kind's search field, ignoring case.
Employees, tasks and the other named kinds are searched by name, messages by
their content. At most 5 records are shown.`,
		Example: `  backofficectl search employee ali`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.kind(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			k.Search(args[1])
			return a.writeRows(cmd.OutOrStdout(), k.Columns(), k.Snapshot().Rows)
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	var byName bool
	cmd := &cobra.Command{
		Use:   "get <kind> <id|name>",
		Short: "Fetch one record from the API",
		Example: `  backofficectl get task 3
  backofficectl get employee --name "Alice Martin"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			var row resource.Row
			if byName {
				row, err = k.FindByName(cmd.Context(), args[1])
			} else {
				var id int64
				if id, err = parseID(args[1]); err != nil {
					return err
				}
				row, err = k.FindByID(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			return a.writeRow(cmd.OutOrStdout(), k.Columns(), row)
		},
	}
	cmd.Flags().BoolVar(&byName, "name", false, "look the record up by name")
	return cmd
}

func newCreateCmd(a *app) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:     "create <kind> --set field=value...",
		Short:   "Create a record",
		Example: `  backofficectl create task --set name=Deploy --set contenu="roll out v2"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.kind(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			values, err := parseSets(sets, k.Fields())
			if err != nil {
				return err
			}
			if err := k.New(); err != nil {
				return err
			}
			return a.submit(cmd, k, values, "Created.")
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as field=value (repeatable)")
	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "update <kind> <id> --set field=value...",
		Short: "Update fields of a record",
		Long: `Update loads the record, replaces the fields given with --set and saves it.
Fields not named keep their current value.`,
		Example: `  backofficectl update employee 4 --set telephone=0601020304`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			k, err := a.kind(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			changes, err := parseSets(sets, k.Fields())
			if err != nil {
				return err
			}
			if len(changes) == 0 {
				return usageErrorf("nothing to update, use --set field=value")
			}
			if err := k.EditByID(id); err != nil {
				return err
			}
			values := k.Snapshot().Form.Clone()
			for f, v := range changes {
				values[f] = v
			}
			return a.submit(cmd, k, values, "Updated.")
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as field=value (repeatable)")
	return cmd
}

func (a *app) submit(cmd *cobra.Command, k resource.Handle, values resource.Values, done string) error {
	err := k.Submit(cmd.Context(), values)
	if err != nil && k.Snapshot().Mode.IsOpen() {
		writeFieldErrors(cmd.ErrOrStderr(), err)
		return err
	}
	// the record was saved; a failed re-fetch is only reported
	if err != nil {
		a.logger.Warn(cmd.Context(), "refresh after save failed", "error", err)
	}
	if !a.jsonOutput {
		fmt.Fprintln(cmd.OutOrStdout(), done)
	}
	return nil
}

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <kind> <id>",
		Short: "Delete a record",
		Example: `  backofficectl delete forum 7
  backofficectl delete forum 7 --yes`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			k, err := a.kind(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			confirmed := false
			confirm := func(prompt string) bool {
				if yes {
					confirmed = true
					return true
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Delete %s %d? %s [y/N] ", k.Kind(), id, prompt)
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(line)) {
				case "y", "yes":
					confirmed = true
				}
				return confirmed
			}
			err = k.DeleteByID(cmd.Context(), id, confirm)
			if err != nil {
				return err
			}
			if !a.jsonOutput {
				if confirmed {
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %d.\n", k.Kind(), id)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Not deleted.")
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
