// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jload

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/creachadair/jload/internal/escape"
	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Colon                // colon ":"
	Comma                // comma ","
	String               // quoted string
	Integer              // number: integer with no fraction or exponent
	Real                 // number with fraction and/or exponent
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
	EOF                  // end of input
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Colon:   `":"`,
	Comma:   `","`,
	String:  "string",
	Integer: "integer",
	Real:    "real",
	True:    "true",
	False:   "false",
	Null:    "null",
	EOF:     "end of input",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A lexer reads tokens from a stream. Each call to scan advances to the next
// token of the input and records its raw text and decoded payload.
type lexer struct {
	strm  stream
	tok   Token
	saved bytes.Buffer // raw text of the current token
	line  int          // 1-based, counts newlines consumed

	// Decoded payload of the current token. str is valid only until the next
	// call to scan; callers must copy it out before advancing.
	str  []byte
	num  int64
	real float64
}

func newLexer(src Source) *lexer {
	return &lexer{strm: stream{src: src}, line: 1}
}

func (l *lexer) get() int { return l.strm.next() }

func (l *lexer) getSave() int {
	c := l.strm.next()
	l.save(c)
	return c
}

func (l *lexer) save(c int) {
	if c >= 0 {
		l.saved.WriteByte(byte(c))
	}
}

func (l *lexer) ungetUnsave(c int) {
	l.strm.unget(c)
	if c >= 0 {
		l.saved.Truncate(l.saved.Len() - 1)
	}
}

// scan advances to the next token of the input and returns its type.
func (l *lexer) scan() Token {
	l.saved.Reset()
	l.str = nil

	c := l.get()
	for c == ' ' || c == '\t' || c == '\n' || c == '\r' {
		if c == '\n' {
			l.line++
		}
		c = l.get()
	}

	if c == eob {
		l.tok = EOF
		return l.tok
	}

	l.save(c)
	switch {
	case c == '{':
		l.tok = LBrace
	case c == '}':
		l.tok = RBrace
	case c == '[':
		l.tok = LSquare
	case c == ']':
		l.tok = RSquare
	case c == ':':
		l.tok = Colon
	case c == ',':
		l.tok = Comma
	case c == '"':
		l.scanString()
	case c == '-' || isDigit(c):
		l.scanNumber(c)
	case isLetter(c):
		l.scanKeyword()
	default:
		l.tok = Invalid
	}
	return l.tok
}

// scanString scans the remainder of a string token after its opening quote.
// The raw pass consumes through the closing quote, validating escape shapes;
// a control character or bad escape is pushed back so the raw text shows a
// clean token boundary. The decode pass then rewrites the raw text with the
// escapes undone. Unicode (\uXXXX) escapes pass the shape check but are
// always rejected by the decode pass; they are not supported.
func (l *lexer) scanString() {
	l.tok = Invalid

	c := l.getSave()
	for c != '"' {
		if c < 0 {
			return // end of input or malformed UTF-8
		}
		if c <= 0x1F {
			// Unescaped control character: push back so the caller can tell a
			// truncated string apart from end of input.
			l.ungetUnsave(c)
			return
		}
		if c == '\\' {
			c = l.getSave()
			switch c {
			case 'u':
				for i := 0; i < 4; i++ {
					c = l.getSave()
					if !isHex(c) {
						l.ungetUnsave(c)
						return
					}
				}
				c = l.getSave()
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				c = l.getSave()
			default:
				l.ungetUnsave(c)
				return
			}
		} else {
			c = l.getSave()
		}
	}

	raw := l.saved.Bytes()
	dec, err := escape.Unquote(mem.B(raw[1 : len(raw)-1]))
	if err != nil {
		return // \u escape: shape-valid but unsupported
	}
	l.str = dec
	l.tok = String
}

// scanNumber scans a number token whose first character c ("-" or a digit)
// has already been consumed and saved. The grammar is enforced by explicit
// checks: no digit may follow a leading zero, and the fraction and exponent
// each require at least one digit.
func (l *lexer) scanNumber(c int) {
	l.tok = Invalid

	if c == '-' {
		c = l.getSave()
		if !isDigit(c) {
			l.ungetUnsave(c)
			return
		}
	}

	if c == '0' {
		c = l.getSave()
		if isDigit(c) {
			// Leading zero: stop at a clean token boundary.
			l.ungetUnsave(c)
			return
		}
	} else {
		c = l.getSave()
		for isDigit(c) {
			c = l.getSave()
		}
	}

	if c != '.' && c != 'e' && c != 'E' {
		l.ungetUnsave(c)
		l.tok = Integer
		l.num = parseInt(l.saved.Bytes())
		return
	}

	if c == '.' {
		c = l.get()
		if !isDigit(c) {
			return
		}
		l.save(c)

		c = l.getSave()
		for isDigit(c) {
			c = l.getSave()
		}
	}

	if c == 'e' || c == 'E' {
		c = l.getSave()
		if c == '+' || c == '-' {
			c = l.getSave()
		}
		if !isDigit(c) {
			l.ungetUnsave(c)
			return
		}
		c = l.getSave()
		for isDigit(c) {
			c = l.getSave()
		}
	}

	l.ungetUnsave(c)
	l.tok = Real
	l.real = parseReal(l.saved.Bytes())
}

// scanKeyword consumes a maximal run of ASCII letters, so that a bogus
// identifier shows up whole in diagnostics, and matches the run against the
// JSON constants.
func (l *lexer) scanKeyword() {
	c := l.getSave()
	for isLetter(c) {
		c = l.getSave()
	}
	l.ungetUnsave(c)

	got := mem.B(l.saved.Bytes())
	switch {
	case got.Equal(mem.S("true")):
		l.tok = True
	case got.Equal(mem.S("false")):
		l.tok = False
	case got.Equal(mem.S("null")):
		l.tok = Null
	default:
		l.tok = Invalid
	}
}

// parseInt converts the raw text of an integer token. The scanner grammar
// guarantees the text is a valid base-10 integer, so any conversion failure
// other than overflow is an invariant violation. Overflow saturates, as the
// original C conversion does.
func parseInt(text []byte) int64 {
	v, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("jload: integer token %q did not convert: %v", text, err))
	}
	return v
}

// parseReal converts the raw text of a real token. Overflow saturates to an
// infinity.
func parseReal(text []byte) float64 {
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("jload: real token %q did not convert: %v", text, err))
	}
	return v
}

func isDigit(c int) bool  { return c >= '0' && c <= '9' }
func isLetter(c int) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isHex(c int) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
