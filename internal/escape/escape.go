// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape decodes the escape sequences of JSON strings.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// ErrUnicodeEscape is reported when the input contains a \uXXXX escape.
// The scanner accepts such escapes syntactically, but decoding them is not
// supported.
var ErrUnicodeEscape = errors.New("unicode escapes are not supported")

// Unquote decodes a byte slice containing the JSON encoding of a string,
// with the enclosing double quotation marks already removed. Each two-byte
// escape sequence is replaced with its unescaped equivalent, so the result
// is never longer than the input.
//
// The input must be escape-shape-valid, as the scanner's raw pass
// guarantees; any other backslash sequence is an invariant violation.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}

	dec := make([]byte, 0, src.Len())
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)

		c := src.At(0)
		switch c {
		case '"', '\\', '/':
			dec = append(dec, c)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			return nil, ErrUnicodeEscape
		default:
			panic(fmt.Sprintf("escape: invalid sequence \\%c in scanned string", c))
		}
		src = src.SliceFrom(1)

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			return dec, nil
		}
	}
}
