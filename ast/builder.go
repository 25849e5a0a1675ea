// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import "github.com/creachadair/jload"

// Builder implements the jload.Builder contract for the types of this
// package. The zero value is ready for use. Storage is managed by the
// garbage collector, so Release is a no-op.
type Builder struct{}

// Object satisfies part of the jload.Builder interface.
func (Builder) Object() (jload.Value, error) { return new(Object), nil }

// Array satisfies part of the jload.Builder interface.
func (Builder) Array() (jload.Value, error) { return new(Array), nil }

// String satisfies part of the jload.Builder interface.
func (Builder) String(s string) (jload.Value, error) { return String(s), nil }

// Integer satisfies part of the jload.Builder interface.
func (Builder) Integer(z int64) (jload.Value, error) { return Integer(z), nil }

// Real satisfies part of the jload.Builder interface.
func (Builder) Real(f float64) (jload.Value, error) { return Real(f), nil }

// Bool satisfies part of the jload.Builder interface.
func (Builder) Bool(v bool) (jload.Value, error) { return Bool(v), nil }

// Null satisfies part of the jload.Builder interface.
func (Builder) Null() (jload.Value, error) { return Null{}, nil }

// SetMember satisfies part of the jload.Builder interface.
func (Builder) SetMember(obj jload.Value, key string, v jload.Value) error {
	obj.(*Object).Set(key, v.(Value))
	return nil
}

// Append satisfies part of the jload.Builder interface.
func (Builder) Append(arr jload.Value, v jload.Value) error {
	a := arr.(*Array)
	a.Values = append(a.Values, v.(Value))
	return nil
}

// Release satisfies part of the jload.Builder interface. It does nothing.
func (Builder) Release(jload.Value) {}
