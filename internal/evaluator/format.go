package evaluator

import (
	"fmt"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
)

// renderTemplate implements the fmt/pfmt template language over the
// evaluated-argument sequence (name at 0, template string at 1, substitution
// arguments from 2).
//
//	\{       a literal '{'
//	{spec}   a printf-style conversion body; a '*' consumes an extra
//	         integer width/precision argument before the value
//
// When spec's last character is not a letter, the substituted text is the
// argument's default rendering rather than its raw payload. A '{' whose
// spec never closes ends rendering; the remainder of the template is
// dropped.
func renderTemplate(args []*ast.Node) (string, error) {
	tmpl := args[1].Text
	argIdx := 2

	var out []byte
	last := byte(0)
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '{' {
			out = append(out, c)
			last = c
			continue
		}
		if last == '\\' {
			out = out[:len(out)-1]
			out = append(out, '{')
			last = c
			continue
		}

		j := i + 1
		varWidth := false
		for j < len(tmpl) && tmpl[j] != '}' {
			if tmpl[j] == '*' {
				varWidth = true
			}
			j++
		}
		if j >= len(tmpl) {
			break
		}
		spec := tmpl[i+1 : j]
		i = j
		last = '}'

		need := argIdx
		if varWidth {
			need++
		}
		if len(args) <= need {
			return "", diagnostics.NewEvalError("format missing argument")
		}

		width := 0
		if varWidth {
			w := args[argIdx]
			if w.Kind != ast.INT {
				return "", diagnostics.NewEvalError("format width must be an integer")
			}
			width = int(w.Value)
			argIdx++
		}

		// Specs not ending in a conversion letter substitute the default
		// rendering via %s.
		goSpec := "%" + spec
		var value interface{}
		if len(spec) == 0 || !isAlpha(spec[len(spec)-1]) {
			goSpec += "s"
			value = args[argIdx].String()
		} else {
			value = rawValue(args[argIdx])
		}
		argIdx++

		if varWidth {
			out = append(out, fmt.Sprintf(goSpec, width, value)...)
		} else {
			out = append(out, fmt.Sprintf(goSpec, value)...)
		}
	}

	return string(out), nil
}

// rawValue is the payload handed to letter-verb conversions: the integer
// for ints, the text for strings and names, and the rendering for lists.
func rawValue(node *ast.Node) interface{} {
	switch node.Kind {
	case ast.INT:
		return node.Value
	case ast.STRING, ast.NAME:
		return node.Text
	default:
		return node.String()
	}
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
