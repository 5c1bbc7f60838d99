package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/backoffice/internal/client/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, tt.want, GetConfirm(rdr(tt.input), "Are you sure?", &out))
			assert.Equal(t, "Are you sure? [y/N] ", out.String())
		})
	}
}

func TestGetFormValues(t *testing.T) {
	fields := []resource.Field{{Name: "name"}, {Name: "contenu", Label: "Content"}}

	t.Run("create", func(t *testing.T) {
		var out bytes.Buffer
		got, err := GetFormValues(rdr("Write docs\nall of them\n"), fields, resource.Values{}, &out)
		require.NoError(t, err)
		assert.Equal(t, resource.Values{"name": "Write docs", "contenu": "all of them"}, got)
		assert.Contains(t, out.String(), "Content\n> ")
	})

	t.Run("edit keeps blank answers", func(t *testing.T) {
		var out bytes.Buffer
		current := resource.Values{"name": "Old name", "contenu": "old body"}
		got, err := GetFormValues(rdr("\nnew body\n"), fields, current, &out)
		require.NoError(t, err)
		assert.Equal(t, resource.Values{"name": "Old name", "contenu": "new body"}, got)
		assert.Contains(t, out.String(), "name [Old name]")
		assert.Equal(t, "old body", current["contenu"], "input values are not modified")
	})

	t.Run("eof", func(t *testing.T) {
		var out bytes.Buffer
		_, err := GetFormValues(rdr("only one\n"), fields, resource.Values{}, &out)
		assert.ErrorIs(t, err, io.EOF)
	})
}
