package ast

import (
	"strconv"
	"strings"
)

type Kind string

const (
	PROGRAM = "PROGRAM"
	LIST    = "LIST"
	INT     = "INT"
	STRING  = "STRING"
	NAME    = "NAME"
)

// Node is one parsed syntax element: the program root, a list, or an atom.
// The same type represents both source trees and evaluation results.
//
// A Node owns its payload exclusively. Evaluation never shares children or
// text between two live nodes; anything stored into the function table, an
// argument frame, or returned as a result is produced with Clone. This is
// what keeps a function's executing body valid while the function redefines
// itself.
type Node struct {
	Kind     Kind
	Children []*Node // PROGRAM, LIST
	Value    int64   // INT
	Text     string  // STRING, NAME
}

func NewProgram() *Node {
	return &Node{Kind: PROGRAM}
}

func NewList() *Node {
	return &Node{Kind: LIST}
}

func NewInt(v int64) *Node {
	return &Node{Kind: INT, Value: v}
}

func NewString(s string) *Node {
	return &Node{Kind: STRING, Text: s}
}

func NewName(s string) *Node {
	return &Node{Kind: NAME, Text: s}
}

// Clone returns a full recursive duplicate of the node. The copy shares no
// structure with the original.
func (n *Node) Clone() *Node {
	out := &Node{Kind: n.Kind, Value: n.Value, Text: n.Text}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// Equal reports whether two nodes have the same kind and payload, comparing
// children recursively.
func (n *Node) Equal(other *Node) bool {
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case INT:
		return n.Value == other.Value
	case STRING, NAME:
		return n.Text == other.Text
	case LIST, PROGRAM:
		if len(n.Children) != len(other.Children) {
			return false
		}
		for i, child := range n.Children {
			if !child.Equal(other.Children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the node the way print and the default format substitution
// display values: lists as `[ e1 e2 ... ]`, ints in decimal, strings
// verbatim, and names as `<name N>`.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	switch n.Kind {
	case PROGRAM:
		for _, child := range n.Children {
			child.render(b)
			b.WriteByte('\n')
		}
	case LIST:
		b.WriteString("[ ")
		for _, child := range n.Children {
			child.render(b)
			b.WriteByte(' ')
		}
		b.WriteByte(']')
	case INT:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case STRING:
		b.WriteString(n.Text)
	case NAME:
		b.WriteString("<name ")
		b.WriteString(n.Text)
		b.WriteByte('>')
	}
}
