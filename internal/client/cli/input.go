package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/backoffice/internal/client/resource"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetConfirm asks a yes/no question. Only "y" and "yes" (any case) accept;
// anything else, EOF included, declines.
func GetConfirm(reader *bufio.Reader, prompt string, w io.Writer) bool {
	if _, err := fmt.Fprint(w, prompt+" [y/N] "); err != nil {
		return false
	}
	answer, err := readLine(reader)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// GetFormValues prompts for every field in order. The current value is shown
// in brackets and kept when the answer is empty.
func GetFormValues(reader *bufio.Reader, fields []resource.Field, current resource.Values, w io.Writer) (resource.Values, error) {
	values := current.Clone()
	for _, f := range fields {
		prompt := f.DisplayName()
		if v := current[f.Name]; v != "" {
			prompt += " [" + v + "]"
		}
		answer, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		if answer != "" {
			values[f.Name] = answer
		}
	}
	return values, nil
}
