// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jload

import (
	"strings"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

// drain reads values from s until end of input or a sentinel cap.
func drain(s *stream) []int {
	var got []int
	for i := 0; i < 100; i++ {
		c := s.next()
		got = append(got, c)
		if c == eob || c == badRune {
			return got
		}
	}
	return got
}

func TestStringSource(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc", "abc"},
		{"ab\x00cd", "ab"}, // input ends at the first NUL
		{"\x00abc", ""},
	}
	for _, test := range tests {
		src := StringSource(test.input)
		var got []byte
		for !src.Exhausted() {
			got = append(got, byte(src.NextByte()))
		}
		if src.NextByte() != EndOfInput {
			t.Errorf("Input %#q: NextByte after exhaustion is not EndOfInput", test.input)
		}
		if string(got) != test.want {
			t.Errorf("Input %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestFuncSource(t *testing.T) {
	const input = "xyz"
	pos := 0
	src := FuncSource(func() int {
		if pos >= len(input) {
			return EndOfInput
		}
		c := input[pos]
		pos++
		return int(c)
	}, func() bool { return pos >= len(input) })

	s := &stream{src: src}
	want := []int{'x', 'y', 'z', eob}
	if diff := cmp.Diff(want, drain(s)); diff != "" {
		t.Errorf("Stream values: (-want, +got)\n%s", diff)
	}
}

// A source that reports the end sentinel while claiming input remains must
// not be treated as end of input; the value decays to the byte 0xFF, which
// fails UTF-8 validation.
func TestEndOfInputAliasing(t *testing.T) {
	src := FuncSource(func() int { return EndOfInput }, func() bool { return false })
	s := &stream{src: src}
	if got := s.next(); got != badRune {
		t.Errorf("next: got %d, want badRune (%d)", got, badRune)
	}
}

func TestStreamUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"ASCII", "ab", []int{'a', 'b', eob}},
		{"TwoByte", "é", []int{0xC3, 0xA9, eob}},
		{"ThreeByte", " ", []int{0xE2, 0x80, 0xA8, eob}},
		{"FourByte", "\U0001F4A9", []int{0xF0, 0x9F, 0x92, 0xA9, eob}},

		{"BareContinuation", "\xA0x", []int{badRune}},
		{"BadLead", "\xFFx", []int{badRune}},
		{"Overlong", "\xC0\xAF", []int{badRune}},
		{"Surrogate", "\xED\xA0\x80", []int{badRune}},
		{"Truncated", "\xC3", []int{badRune}},
		{"BadContinuation", "\xC3\x28", []int{badRune}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := &stream{src: StringSource(test.input)}
			if diff := cmp.Diff(test.want, drain(s)); diff != "" {
				t.Errorf("Input %#q: stream values: (-want, +got)\n%s", test.input, diff)
			}
		})
	}
}

func TestStreamUnget(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		s := &stream{src: StringSource("ab")}
		c := s.next()
		s.unget(c)
		if got := s.next(); got != c {
			t.Errorf("next after unget: got %d, want %d", got, c)
		}
		if got := s.next(); got != 'b' {
			t.Errorf("next: got %d, want 'b'", got)
		}
	})
	t.Run("Sentinel", func(t *testing.T) {
		s := &stream{src: StringSource("")}
		c := s.next()
		if c != eob {
			t.Fatalf("next: got %d, want eob", c)
		}
		s.unget(c)
		if got := s.next(); got != eob {
			t.Errorf("next after unget: got %d, want eob", got)
		}
	})
	t.Run("WrongValue", func(t *testing.T) {
		s := &stream{src: StringSource("ab")}
		s.next()
		mtest.MustPanic(t, func() { s.unget('b') })
	})
	t.Run("Double", func(t *testing.T) {
		s := &stream{src: StringSource("ab")}
		c := s.next()
		s.unget(c)
		mtest.MustPanic(t, func() { s.unget(c) })
	})
	t.Run("BeforeRead", func(t *testing.T) {
		s := &stream{src: StringSource("ab")}
		mtest.MustPanic(t, func() { s.unget('a') })
	})
}

func TestReaderSource(t *testing.T) {
	src := ReaderSource(strings.NewReader("ok")).(*readerSource)
	if src.Exhausted() {
		t.Error("Exhausted reported true before reading")
	}
	var got []byte
	for {
		b := src.NextByte()
		if b == EndOfInput {
			break
		}
		got = append(got, byte(b))
	}
	if string(got) != "ok" {
		t.Errorf("Read: got %#q, want %#q", got, "ok")
	}
	if !src.Exhausted() {
		t.Error("Exhausted reported false at end of input")
	}
}
