// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"io"

	"github.com/creachadair/jload"
)

// Parse parses a single JSON document from src into a Value.
func Parse(src jload.Source) (Value, error) { return wrap(jload.Parse(src, Builder{})) }

// ParseString parses a single JSON document from s into a Value.
func ParseString(s string) (Value, error) { return wrap(jload.ParseString(s, Builder{})) }

// ParseReader parses a single JSON document from r into a Value.
func ParseReader(r io.Reader) (Value, error) { return wrap(jload.ParseReader(r, Builder{})) }

// ParseFile parses the JSON document in the named file into a Value.
func ParseFile(path string) (Value, error) { return wrap(jload.ParseFile(path, Builder{})) }

func wrap(v jload.Value, err error) (Value, error) {
	if err != nil {
		return nil, err
	}
	return v.(Value), nil
}
