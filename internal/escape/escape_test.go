// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jload/internal/escape"
	"go4.org/mem"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{``, ``},
		{`plain text`, `plain text`},
		{`a\tb`, "a\tb"},
		{`\"\\\/`, `"\/`},
		{`\b\f\n\r\t`, "\b\f\n\r\t"},
		{`tab\tand\nnewline`, "tab\tand\nnewline"},
		{`trailing\n`, "trailing\n"},
		{`\tleading`, "\tleading"},
		{`a\\b\\cd`, `a\b\cd`},
	}

	for _, test := range tests {
		got, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", test.input, err)
		} else if string(got) != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquoteUnicodeEscape(t *testing.T) {
	tests := []string{
		`\u0041`,
		`a\u0041b`,
		`\tok\uffff`, // earlier escapes do not change the outcome
	}
	for _, input := range tests {
		got, err := escape.Unquote(mem.S(input))
		if err == nil {
			t.Errorf("Unquote(%#q): got %#q, want error", input, got)
		} else if !errors.Is(err, escape.ErrUnicodeEscape) {
			t.Errorf("Unquote(%#q): got error %v, want ErrUnicodeEscape", input, err)
		}
	}
}
