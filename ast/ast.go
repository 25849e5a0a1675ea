// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree representation for JSON values and implements
// the jload.Builder contract over it, so documents can be parsed into the
// tree without writing a custom builder.
package ast

// A Value is an arbitrary JSON value.
type Value interface{ isValue() }

// An Object is a collection of key-value members. Members preserve the order
// in which their keys first appeared in the source.
type Object struct {
	Members []*Member
}

func (*Object) isValue() {}

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Set sets the member key: v in o. If o already has a member named key, its
// value is replaced in place; otherwise the member is appended.
func (o *Object) Set(key string, v Value) {
	if m := o.Find(key); m != nil {
		m.Value = v
		return
	}
	o.Members = append(o.Members, &Member{Key: key, Value: v})
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.Members) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Array is a sequence of values.
type Array struct {
	Values []Value
}

func (*Array) isValue() {}

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.Values) }

// A String is a string value, fully decoded.
type String string

func (String) isValue() {}

// An Integer is an integer value.
type Integer int64

func (Integer) isValue() {}

// A Real is a floating-point value.
type Real float64

func (Real) isValue() {}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

// Null represents the null constant.
type Null struct{}

func (Null) isValue() {}
