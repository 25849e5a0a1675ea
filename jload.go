// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jload

import (
	"io"
	"os"
)

// Parse parses a single JSON document from src, constructing its value tree
// through b. On success it returns the root of the tree, whose ownership
// transfers to the caller. On failure it returns a nil Value and an error:
// an *Error for syntax, encoding, and I/O failures, or the error reported by
// b. No partial tree is ever returned, and every value constructed before
// the failure has been released.
//
// Parse is the primitive the other entry points are built on. It consumes
// src synchronously; a call may block whenever a read from src blocks.
func Parse(src Source, b Builder) (Value, error) {
	p := &parser{lex: newLexer(src), b: b}
	return p.parseDocument()
}

// ParseString parses a document from s. Input ends at the end of s or at the
// first NUL byte, whichever comes first.
func ParseString(s string, b Builder) (Value, error) {
	return Parse(StringSource(s), b)
}

// ParseReader parses a document from r. A read failure other than io.EOF is
// reported as an I/O error with no position.
func ParseReader(r io.Reader, b Builder) (Value, error) {
	src := ReaderSource(r).(*readerSource)
	v, err := Parse(src, b)
	if err != nil {
		if rerr := src.Err(); rerr != nil && rerr != io.EOF {
			return nil, ioError(rerr.Error(), rerr)
		}
		return nil, err
	}
	return v, nil
}

// ParseFile parses the document in the named file. A failure to open the
// file is reported as an I/O error carrying the operating system's error
// text, with no position.
func ParseFile(path string, b Builder) (Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("unable to open "+path+": "+err.Error(), err)
	}
	defer f.Close()
	return ParseReader(f, b)
}
