// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jload

// A Value is a node of the document tree under construction. Values are
// created and composed by a Builder; the parser never inspects them.
type Value = any

// A Builder constructs the value tree for a parse on behalf of the parser.
// The parser calls the factory methods to create nodes for the scalars and
// containers it recognizes, and the mutator methods to compose them. If any
// method reports an error, parsing stops and the error is returned to the
// caller of the parse.
//
// Ownership follows a strict stack discipline: a value returned by a factory
// method is owned by the parser until it is attached to its parent container
// by a successful SetMember or Append, at which point ownership transfers to
// the container. If the parse fails, the parser calls Release exactly once
// for every value it still owns; it never releases an attached value and
// never releases the same value twice. On success the completed root is
// returned to the caller, who assumes ownership of the whole tree.
//
// Release exists for value models that manage storage explicitly. A model
// relying on the garbage collector may implement it as a no-op.
type Builder interface {
	// Object returns a new, empty object.
	Object() (Value, error)

	// Array returns a new, empty array.
	Array() (Value, error)

	// String returns a new string value. The argument is fully decoded; it
	// contains no escape sequences.
	String(s string) (Value, error)

	// Integer returns a new integer value.
	Integer(z int64) (Value, error)

	// Real returns a new floating-point value.
	Real(f float64) (Value, error)

	// Bool returns a new Boolean value.
	Bool(v bool) (Value, error)

	// Null returns a new null value.
	Null() (Value, error)

	// SetMember adds the member key: v to obj. If obj already has a member
	// named key, v replaces its value (last write wins). On success ownership
	// of v transfers to obj; on failure the caller retains it.
	SetMember(obj Value, key string, v Value) error

	// Append appends v to the array arr. On success ownership of v transfers
	// to arr; on failure the caller retains it.
	Append(arr Value, v Value) error

	// Release releases v and everything it owns.
	Release(v Value)
}
