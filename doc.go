// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jload implements a strict JSON parser that reports precise,
// human-readable syntax errors.
//
// # Parsing
//
// The Parse functions read a single JSON document from an input source and
// construct its value tree through a Builder. A document must be rooted at
// an object or an array, and nothing but whitespace may follow it:
//
//	v, err := jload.ParseString(`{"a": [1, 2.5, true]}`, builder)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Input may come from a string (ParseString), an io.Reader (ParseReader), a
// named file (ParseFile), or any implementation of the Source interface
// (Parse). Parsing stops at the first error; there is no recovery and no
// partial result. Syntax and I/O failures are reported as an *Error carrying
// the 1-based line number and a message that quotes the offending text:
//
//	_, err := jload.ParseString(`{"a":}`, builder)
//	// err.Error() == "line 1: unexpected token near '}'"
//
// # Builders
//
// A Builder supplies the value model: the parser calls its factory methods
// for each scalar and container it recognizes and its mutator methods to
// compose them, but never inspects the values itself. Package ast provides a
// ready-made tree model; supply your own Builder to construct values
// directly in a different representation.
//
// # Limitations
//
// Unicode (\uXXXX) escapes are validated for shape but rejected when a
// string is decoded; decoding them is not supported. Nesting depth is
// bounded only by the stack, so callers parsing adversarial input should
// impose their own depth limit in a Builder.
package jload
