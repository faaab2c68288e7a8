package ast_test

import (
	"testing"

	"github.com/zinclang/zinc/internal/ast"
)

func sampleTree() *ast.Node {
	list := ast.NewList()
	inner := ast.NewList()
	inner.Children = append(inner.Children, ast.NewString("s"), ast.NewName("n"))
	list.Children = append(list.Children, ast.NewInt(1), inner)
	return list
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleTree()
	clone := original.Clone()

	if !clone.Equal(original) {
		t.Fatal("clone differs from original")
	}

	clone.Children[0].Value = 99
	clone.Children[1].Children[0].Text = "mutated"
	clone.Children[1].Children = append(clone.Children[1].Children, ast.NewInt(3))

	want := sampleTree()
	if !original.Equal(want) {
		t.Errorf("mutating the clone changed the original: %s", original.String())
	}
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		name string
		a, b *ast.Node
		want bool
	}{
		{"same_int", ast.NewInt(1), ast.NewInt(1), true},
		{"different_int", ast.NewInt(1), ast.NewInt(2), false},
		{"kind_mismatch", ast.NewInt(1), ast.NewString("1"), false},
		{"string_vs_name", ast.NewString("x"), ast.NewName("x"), false},
		{"same_tree", sampleTree(), sampleTree(), true},
		{"different_length", sampleTree(), ast.NewList(), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	testCases := []struct {
		name string
		node *ast.Node
		want string
	}{
		{"int", ast.NewInt(-7), "-7"},
		{"string", ast.NewString("a b"), "a b"},
		{"name", ast.NewName("foo"), "<name foo>"},
		{"empty_list", ast.NewList(), "[ ]"},
		{"nested", sampleTree(), "[ 1 [ s <name n> ] ]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.node.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestProgramRendering(t *testing.T) {
	program := ast.NewProgram()
	program.Children = append(program.Children, ast.NewInt(1), ast.NewName("x"))
	if got, want := program.String(), "1\n<name x>\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
