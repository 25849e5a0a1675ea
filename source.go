// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jload

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// EndOfInput is the in-band sentinel a Source returns from NextByte when no
// further input is available.
const EndOfInput = -1

// A Source supplies raw input bytes to the parser, one byte at a time.
//
// NextByte returns the next byte of input as a non-negative int, or
// EndOfInput when the source is exhausted. Because a defective source may
// report values that collide with the sentinel, the parser confirms end of
// input by separately calling Exhausted: a NextByte result equal to
// EndOfInput is treated as terminal only if Exhausted also reports true.
// Otherwise the value is reinterpreted as the byte 0xFF, which the UTF-8
// layer rejects.
//
// A NextByte call may block according to the semantics of the underlying
// medium; an in-memory source never blocks.
type Source interface {
	NextByte() int
	Exhausted() bool
}

// StringSource returns a Source that reads the bytes of s. Reading stops at
// the end of s or at the first NUL byte, whichever comes first.
func StringSource(s string) Source { return &stringSource{s: s} }

type stringSource struct {
	s   string
	pos int
}

func (s *stringSource) NextByte() int {
	if s.Exhausted() {
		return EndOfInput
	}
	c := s.s[s.pos]
	s.pos++
	return int(c)
}

func (s *stringSource) Exhausted() bool {
	return s.pos >= len(s.s) || s.s[s.pos] == 0
}

// ReaderSource returns a Source that reads bytes from r. Input is buffered;
// if r is already a *bufio.Reader it is used directly. The first read error
// (including io.EOF) ends the source.
func ReaderSource(r io.Reader) Source {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &readerSource{r: br}
}

type readerSource struct {
	r   *bufio.Reader
	err error // first read error; io.EOF for normal end of input
}

func (r *readerSource) NextByte() int {
	if r.err != nil {
		return EndOfInput
	}
	b, err := r.r.ReadByte()
	if err != nil {
		r.err = err
		return EndOfInput
	}
	return int(b)
}

func (r *readerSource) Exhausted() bool { return r.err != nil }

// Err reports the error that ended the source, or nil if the source has not
// ended. A normal end of input reports io.EOF.
func (r *readerSource) Err() error { return r.err }

// FuncSource returns a Source built from a pair of callbacks: next returns
// the next raw byte or EndOfInput, and exhausted reports whether the input is
// at an end. State shared between the callbacks belongs to their closure.
func FuncSource(next func() int, exhausted func() bool) Source {
	return funcSource{next: next, exhausted: exhausted}
}

type funcSource struct {
	next      func() int
	exhausted func() bool
}

func (f funcSource) NextByte() int   { return f.next() }
func (f funcSource) Exhausted() bool { return f.exhausted() }

// Sentinels reported by stream.next alongside ordinary byte values.
const (
	eob     = -1 // end of input
	badRune = -2 // malformed UTF-8 sequence
)

// A stream adapts a Source into a byte-at-a-time reader with one-level
// pushback and UTF-8 sequence validation. A multi-byte sequence is read and
// validated in full before its first byte is returned; the remaining bytes
// drain from the buffer on subsequent calls.
type stream struct {
	src Source
	buf [utf8.UTFMax]byte
	n   int // bytes buffered
	pos int // read cursor into buf

	last   int  // most recent value returned by next
	replay bool // replay last on the next call (sentinel pushback)
	fresh  bool // last was produced by next, not yet ungot
}

// next returns the next input byte, or eob at end of input, or badRune if the
// input contains a malformed UTF-8 sequence.
func (s *stream) next() int {
	if s.replay {
		s.replay = false
		s.fresh = true
		return s.last
	}
	if s.pos < s.n {
		return s.emit(int(s.buf[s.pos]))
	}

	b := s.src.NextByte()
	if b == EndOfInput && s.src.Exhausted() {
		return s.emitRaw(eob)
	}
	c := byte(b)
	if c < utf8.RuneSelf {
		s.buf[0] = c
		s.n, s.pos = 1, 0
		return s.emit(int(c))
	}

	// Multi-byte sequence: buffer and validate it whole.
	count := seqLen(c)
	if count == 0 {
		return s.emitRaw(badRune)
	}
	s.buf[0] = c
	for i := 1; i < count; i++ {
		b := s.src.NextByte()
		if b == EndOfInput {
			return s.emitRaw(badRune) // truncated sequence
		}
		s.buf[i] = byte(b)
	}
	if !validSeq(s.buf[:count]) {
		return s.emitRaw(badRune)
	}
	s.n, s.pos = count, 0
	return s.emit(int(s.buf[0]))
}

func (s *stream) emit(c int) int {
	s.pos++
	return s.emitRaw(c)
}

func (s *stream) emitRaw(c int) int {
	s.last = c
	s.fresh = true
	return c
}

// unget pushes back the value most recently returned by next. Only a single
// level of pushback is supported, and c must equal that value.
func (s *stream) unget(c int) {
	if !s.fresh || c != s.last {
		panic("stream: unget does not match the last value read")
	}
	s.fresh = false
	if c < 0 {
		s.replay = true
		return
	}
	s.pos--
}

// seqLen reports the expected length of a UTF-8 sequence beginning with lead
// byte b, or 0 if b cannot begin a sequence.
func seqLen(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 0
}

// validSeq reports whether p is exactly one well-formed UTF-8 sequence.
// Overlong encodings and surrogate code points are rejected.
func validSeq(p []byte) bool {
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return size == len(p)
}
