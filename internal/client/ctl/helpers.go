package ctl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/backoffice/internal/client/render"
	"github.com/dmitrijs2005/backoffice/internal/client/resource"
	"github.com/dmitrijs2005/backoffice/internal/common"
)

// errUsage marks errors caused by bad arguments.
var errUsage = errors.New("usage")

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

func isUserError(err error) bool {
	var verr *resource.ValidationError
	return errors.Is(err, errUsage) ||
		errors.Is(err, common.ErrUnknownKind) ||
		errors.Is(err, common.ErrorNotFound) ||
		errors.Is(err, common.ErrMissingID) ||
		errors.As(err, &verr)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, usageErrorf("invalid id %q", s)
	}
	return id, nil
}

// parseSets turns "field=value" pairs into form values. Only fields of the
// kind are accepted.
func parseSets(sets []string, fields []resource.Field) (resource.Values, error) {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.Name] = true
	}
	values := resource.Values{}
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, usageErrorf("--set %q: want field=value", s)
		}
		if !known[name] {
			return nil, usageErrorf("--set %q: unknown field %q", s, name)
		}
		values[name] = value
	}
	return values, nil
}

// rowObject maps columns to cells for JSON output.
func rowObject(columns []string, row resource.Row) map[string]any {
	obj := make(map[string]any, len(columns))
	for i, c := range columns {
		if i >= len(row.Cells) {
			break
		}
		if i == 0 {
			if row.HasID {
				obj[c] = row.ID
			} else {
				obj[c] = nil
			}
			continue
		}
		obj[c] = row.Cells[i]
	}
	return obj
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func (a *app) writeRows(w io.Writer, columns []string, rows []resource.Row) error {
	if a.jsonOutput {
		objs := make([]map[string]any, 0, len(rows))
		for _, r := range rows {
			objs = append(objs, rowObject(columns, r))
		}
		return writeJSON(w, objs)
	}
	return render.Table(w, columns, rows)
}

func (a *app) writeRow(w io.Writer, columns []string, row resource.Row) error {
	if a.jsonOutput {
		return writeJSON(w, rowObject(columns, row))
	}
	return render.Record(w, columns, row)
}

func writeFieldErrors(w io.Writer, err error) {
	var verr *resource.ValidationError
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			fmt.Fprintln(w, "  "+f.Error())
		}
	}
}
