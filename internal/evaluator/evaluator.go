package evaluator

import (
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
)

// Evaluator holds all interpreter state: the user-function table, the
// argument-frame stack, the output writer and the random source. Instances
// are independent; nothing is shared through package globals. A single
// Evaluator is not safe for concurrent use.
type Evaluator struct {
	// Out receives everything print and pfmt write. Defaults to os.Stdout.
	Out io.Writer
	// Rand backs the rand builtin. Seeded from the wall clock at
	// construction; tests may replace it with a fixed-seed source.
	Rand *rand.Rand

	// functions maps a function name to its stored, unevaluated body
	// expressions. Mutated only by define.
	functions map[string][]*ast.Node
	// frames is the argument stack: one frame per active user-function
	// call. Element 0 of a frame is the callee's own name, elements 1..N
	// the evaluated arguments. Only the top frame is visible to :N
	// references.
	frames [][]*ast.Node
}

func New() *Evaluator {
	return &Evaluator{
		Out:       os.Stdout,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		functions: make(map[string][]*ast.Node),
	}
}

// Interpret reduces a node to a value node. Every returned value is a fresh
// tree owned by the caller; source nodes are never mutated.
//
// A PROGRAM node is evaluated for effect only: each child runs in order and
// its result is discarded, and the returned node is nil.
func (e *Evaluator) Interpret(node *ast.Node) (*ast.Node, error) {
	switch node.Kind {
	case ast.PROGRAM:
		for _, child := range node.Children {
			if _, err := e.Interpret(child); err != nil {
				return nil, err
			}
		}
		return nil, nil
	case ast.LIST:
		// Lists are always a function application.
		return e.apply(node)
	case ast.INT, ast.STRING:
		return node.Clone(), nil
	case ast.NAME:
		// A name starting with ':' is an argument reference; any other
		// name is a literal token and evaluates to itself.
		if strings.HasPrefix(node.Text, ":") {
			return e.argumentRef(node)
		}
		return node.Clone(), nil
	}
	return nil, diagnostics.NewEvalError("bad node kind '%s'", node.Kind)
}

// argumentRef resolves a :N reference against the top argument frame.
// :0 is the current function's own name; user arguments start at :1.
func (e *Evaluator) argumentRef(node *ast.Node) (*ast.Node, error) {
	if len(e.frames) == 0 {
		return nil, diagnostics.NewEvalError("argument references are only valid within a function")
	}
	idx, err := strconv.ParseInt(node.Text[1:], 10, 64)
	if err != nil {
		return nil, diagnostics.NewEvalError("unable to parse argument index from '%s'", node.Text)
	}
	frame := e.frames[len(e.frames)-1]
	if idx < 0 || idx >= int64(len(frame)) {
		return nil, diagnostics.NewEvalError("argument reference invalid (%d)", idx)
	}
	return frame[idx].Clone(), nil
}

// Lookup returns the stored body of a user-defined function. Exposed for
// hosts that want to inspect the table; the returned expressions must not
// be mutated.
func (e *Evaluator) Lookup(name string) ([]*ast.Node, bool) {
	body, ok := e.functions[name]
	return body, ok
}
