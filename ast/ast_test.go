// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/jload/ast"
	"github.com/google/go-cmp/cmp"
)

func TestObjectSet(t *testing.T) {
	var obj ast.Object

	obj.Set("a", ast.Integer(1))
	obj.Set("b", ast.Integer(2))
	obj.Set("a", ast.Integer(3)) // replaces in place, keeps position

	want := &ast.Object{Members: []*ast.Member{
		{Key: "a", Value: ast.Integer(3)},
		{Key: "b", Value: ast.Integer(2)},
	}}
	if diff := cmp.Diff(want, &obj); diff != "" {
		t.Errorf("Object: (-want, +got)\n%s", diff)
	}
}

func TestObjectFind(t *testing.T) {
	obj := &ast.Object{Members: []*ast.Member{
		{Key: "x", Value: ast.Bool(true)},
		{Key: "y", Value: ast.Null{}},
	}}
	if m := obj.Find("y"); m == nil {
		t.Error(`Find("y"): got nil, want a member`)
	} else if m.Value != (ast.Null{}) {
		t.Errorf(`Find("y"): got value %v, want null`, m.Value)
	}
	if m := obj.Find("z"); m != nil {
		t.Errorf(`Find("z"): got %+v, want nil`, m)
	}
}

func TestParseTree(t *testing.T) {
	v, err := ast.ParseString(`{"name": "pin", "tags": ["a", "b"], "size": 3.5}`)
	if err != nil {
		t.Fatalf("ParseString: unexpected error: %v", err)
	}
	obj, ok := v.(*ast.Object)
	if !ok {
		t.Fatalf("Root has type %T, want *ast.Object", v)
	}
	if m := obj.Find("name"); m == nil || m.Value != ast.String("pin") {
		t.Errorf(`Member "name": got %+v, want "pin"`, m)
	}
	if m := obj.Find("tags"); m == nil {
		t.Error(`Member "tags" not found`)
	} else if a, ok := m.Value.(*ast.Array); !ok || a.Len() != 2 {
		t.Errorf(`Member "tags": got %+v, want an array of 2`, m.Value)
	}
	if m := obj.Find("size"); m == nil || m.Value != ast.Real(3.5) {
		t.Errorf(`Member "size": got %+v, want 3.5`, m)
	}
}
