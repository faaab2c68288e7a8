package evaluator

import (
	"fmt"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
)

// anyKind in an ArgKinds slot accepts an argument of any kind.
const anyKind = ast.Kind("")

type BuiltinFn func(e *Evaluator, args []*ast.Node) (*ast.Node, error)

// Builtin describes one built-in function. Arity and ArgKinds are checked
// by checkArgs before Fn runs; variadic builtins (Arity < 0) validate
// their own arguments.
type Builtin struct {
	Arity    int
	ArgKinds []ast.Kind
	Fn       BuiltinFn
}

// checkArgs validates the evaluated-argument sequence (name at index 0)
// against the builtin's arity and argument kinds.
func checkArgs(name string, args []*ast.Node, b *Builtin) error {
	if b.Arity < 0 {
		return nil
	}
	n := len(args) - 1
	if n != b.Arity {
		return diagnostics.NewEvalError("in application of function '%s': expected %d arguments, but got %d", name, b.Arity, n)
	}
	for i, kind := range b.ArgKinds {
		if kind == anyKind {
			continue
		}
		if args[i+1].Kind != kind {
			return diagnostics.NewEvalError("in application of function '%s': incorrect type (argument %d)", name, i+1)
		}
	}
	return nil
}

var twoInts = []ast.Kind{ast.INT, ast.INT}

func intOp(op func(a, b int64) int64) *Builtin {
	return &Builtin{
		Arity:    2,
		ArgKinds: twoInts,
		Fn: func(e *Evaluator, args []*ast.Node) (*ast.Node, error) {
			return ast.NewInt(op(args[1].Value, args[2].Value)), nil
		},
	}
}

func cmpOp(op func(a, b int64) bool) *Builtin {
	return &Builtin{
		Arity:    2,
		ArgKinds: twoInts,
		Fn: func(e *Evaluator, args []*ast.Node) (*ast.Node, error) {
			if op(args[1].Value, args[2].Value) {
				return ast.NewInt(1), nil
			}
			return ast.NewInt(0), nil
		},
	}
}

// divOp guards against a zero divisor; native division would otherwise
// crash the process instead of failing the evaluation.
func divOp(name string, op func(a, b int64) int64) *Builtin {
	return &Builtin{
		Arity:    2,
		ArgKinds: twoInts,
		Fn: func(e *Evaluator, args []*ast.Node) (*ast.Node, error) {
			if args[2].Value == 0 {
				return nil, diagnostics.NewEvalError("in application of function '%s': division by zero", name)
			}
			return ast.NewInt(op(args[1].Value, args[2].Value)), nil
		},
	}
}

var builtins = map[string]*Builtin{
	"+":  intOp(func(a, b int64) int64 { return a + b }),
	"-":  intOp(func(a, b int64) int64 { return a - b }),
	"*":  intOp(func(a, b int64) int64 { return a * b }),
	"/":  divOp("/", func(a, b int64) int64 { return a / b }),
	"%":  divOp("%", func(a, b int64) int64 { return a % b }),
	"==": cmpOp(func(a, b int64) bool { return a == b }),
	"!=": cmpOp(func(a, b int64) bool { return a != b }),
	"<":  cmpOp(func(a, b int64) bool { return a < b }),
	"<=": cmpOp(func(a, b int64) bool { return a <= b }),
	">":  cmpOp(func(a, b int64) bool { return a > b }),
	">=": cmpOp(func(a, b int64) bool { return a >= b }),

	"list": {
		Arity: -1,
		Fn: func(e *Evaluator, args []*ast.Node) (*ast.Node, error) {
			list := ast.NewList()
			for _, arg := range args[1:] {
				list.Children = append(list.Children, arg.Clone())
			}
			return list, nil
		},
	},

	"len": {
		Arity:    1,
		ArgKinds: []ast.Kind{ast.LIST},
		Fn: func(e *Evaluator, args []*ast.Node) (*ast.Node, error) {
			return ast.NewInt(int64(len(args[1].Children))), nil
		},
	},

	"append": {
		Arity:    2,
		ArgKinds: []ast.Kind{ast.LIST, ast.LIST},
		Fn: func(e *Evaluator, args []*ast.Node) (*ast.Node, error) {
			list := ast.NewList()
			for _, child := range args[1].Children {
				list.Children = append(list.Children, child.Clone())
			}
			for _, child := range args[2].Children {
				list.Children = append(list.Children, child.Clone())
			}
			return list, nil
		},
	},

	"car": {
		Arity:    1,
		ArgKinds: []ast.Kind{ast.LIST},
		Fn: func(e *Evaluator, args []*ast.Node) (*ast.Node, error) {
			if len(args[1].Children) < 1 {
				return nil, diagnostics.NewEvalError("car expects a non-empty list")
			}
			return args[1].Children[0].Clone(), nil
		},
	},

	"cdr": {
		Arity:    1,
		ArgKinds: []ast.Kind{ast.LIST},
		Fn: func(e *Evaluator, args []*ast.Node) (*ast.Node, error) {
			list := ast.NewList()
			if len(args[1].Children) > 1 {
				for _, child := range args[1].Children[1:] {
					list.Children = append(list.Children, child.Clone())
				}
			}
			return list, nil
		},
	},

	"rand": {
		Arity:    0,
		ArgKinds: nil,
		Fn: func(e *Evaluator, args []*ast.Node) (*ast.Node, error) {
			return ast.NewInt(e.Rand.Int63()), nil
		},
	},

	"print": {
		Arity:    1,
		ArgKinds: []ast.Kind{anyKind},
		Fn: func(e *Evaluator, args []*ast.Node) (*ast.Node, error) {
			fmt.Fprintln(e.Out, args[1].String())
			return args[1].Clone(), nil
		},
	},

	"fmt": {
		Arity: -1,
		Fn: func(e *Evaluator, args []*ast.Node) (*ast.Node, error) {
			if err := checkFormatArgs("fmt", args); err != nil {
				return nil, err
			}
			rendered, err := renderTemplate(args)
			if err != nil {
				return nil, err
			}
			return ast.NewString(rendered), nil
		},
	},

	"pfmt": {
		Arity: -1,
		Fn: func(e *Evaluator, args []*ast.Node) (*ast.Node, error) {
			if err := checkFormatArgs("pfmt", args); err != nil {
				return nil, err
			}
			rendered, err := renderTemplate(args)
			if err != nil {
				return nil, err
			}
			fmt.Fprint(e.Out, rendered)
			return ast.NewString(rendered), nil
		},
	},
}

func checkFormatArgs(name string, args []*ast.Node) error {
	if len(args) < 2 {
		return diagnostics.NewEvalError("%s expects at least one argument", name)
	}
	if args[1].Kind != ast.STRING {
		return diagnostics.NewEvalError("first argument to %s must be a string", name)
	}
	return nil
}
