package evaluator

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
)

// apply evaluates a list node as a function application. Element 0 must
// reduce to a name, which dispatches to a special form, a builtin, or a
// user-defined function, in that order.
func (e *Evaluator) apply(node *ast.Node) (*ast.Node, error) {
	if len(node.Children) == 0 {
		return nil, diagnostics.NewEvalError("no function to apply in empty list\n  did you mean to create an empty list? [list]")
	}

	first, err := e.Interpret(node.Children[0])
	if err != nil {
		return nil, err
	}
	if first.Kind != ast.NAME {
		return nil, diagnostics.NewEvalError("expected function name as first element in list-function application")
	}
	name := first.Text

	// Special forms intercept before the operands are evaluated; they
	// decide themselves which sub-expressions run.
	switch name {
	case "if":
		return e.applyIf(node)
	case "define":
		return e.applyDefine(node)
	}

	// Generic path: evaluate every operand left to right, building the
	// evaluated-argument sequence with the name at index 0.
	args := make([]*ast.Node, 0, len(node.Children))
	args = append(args, first)
	for _, operand := range node.Children[1:] {
		val, err := e.Interpret(operand)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}

	if builtin, ok := builtins[name]; ok {
		if err := checkArgs(name, args, builtin); err != nil {
			return nil, err
		}
		return builtin.Fn(e, args)
	}
	if body, ok := e.functions[name]; ok {
		return e.applyFunction(args, body)
	}
	return nil, diagnostics.NewEvalError("unknown function '%s'", name)
}

// applyIf evaluates the `if` special form. Exactly one of the branch
// expressions is ever evaluated.
func (e *Evaluator) applyIf(node *ast.Node) (*ast.Node, error) {
	if len(node.Children) < 3 {
		return nil, diagnostics.NewEvalError("if expects a condition and at least a true expression")
	}
	cond, err := e.Interpret(node.Children[1])
	if err != nil {
		return nil, err
	}
	if cond.Kind != ast.INT {
		return nil, diagnostics.NewEvalError("if condition must evaluate to an integer")
	}
	if cond.Value != 0 {
		return e.Interpret(node.Children[2])
	}
	if len(node.Children) >= 4 {
		return e.Interpret(node.Children[3])
	}
	return ast.NewInt(0), nil
}

// applyDefine stores a function body in the table, replacing any previous
// entry under the same name. The stored name and expressions are clones of
// the source nodes. The result is a copy of the name.
func (e *Evaluator) applyDefine(node *ast.Node) (*ast.Node, error) {
	if len(node.Children) < 3 {
		return nil, diagnostics.NewEvalError("define expects a name and at least one expression")
	}
	nameNode := node.Children[1]
	if nameNode.Kind != ast.NAME {
		return nil, diagnostics.NewEvalError("define expects a name as its first argument")
	}

	body := make([]*ast.Node, 0, len(node.Children)-2)
	for _, expr := range node.Children[2:] {
		body = append(body, expr.Clone())
	}
	e.functions[nameNode.Text] = body

	return nameNode.Clone(), nil
}

// applyFunction invokes a user-defined function. The evaluated arguments
// are cloned into a new frame, and the stored body is cloned before it
// runs: a define executed during the call may replace the table entry, and
// the executing copy must be unaffected. The frame is popped on every exit
// path.
func (e *Evaluator) applyFunction(args []*ast.Node, body []*ast.Node) (*ast.Node, error) {
	frame := make([]*ast.Node, len(args))
	for i, arg := range args {
		frame[i] = arg.Clone()
	}
	e.frames = append(e.frames, frame)
	defer func() {
		e.frames = e.frames[:len(e.frames)-1]
	}()

	exprs := make([]*ast.Node, len(body))
	for i, expr := range body {
		exprs[i] = expr.Clone()
	}

	var result *ast.Node
	for _, expr := range exprs {
		val, err := e.Interpret(expr)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}
