package lexer_test

import (
	"testing"

	"github.com/zinclang/zinc/internal/lexer"
	"github.com/zinclang/zinc/internal/token"
)

type expectedToken struct {
	typ     token.TokenType
	lexeme  string
	literal interface{}
}

func collect(t *testing.T, input string, want []expectedToken) {
	t.Helper()
	l := lexer.New(input)
	for i, exp := range want {
		tok := l.NextToken()
		if tok.Type != exp.typ {
			t.Fatalf("token %d: type %s, want %s (lexeme %q)", i, tok.Type, exp.typ, tok.Lexeme)
		}
		if exp.lexeme != "" && tok.Lexeme != exp.lexeme {
			t.Errorf("token %d: lexeme %q, want %q", i, tok.Lexeme, exp.lexeme)
		}
		if exp.literal != nil && tok.Literal != exp.literal {
			t.Errorf("token %d: literal %v, want %v", i, tok.Literal, exp.literal)
		}
	}
	if tok := l.NextToken(); tok.Type != token.EOF {
		t.Errorf("trailing token %s %q, want EOF", tok.Type, tok.Lexeme)
	}
}

func TestNextToken(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []expectedToken
	}{
		{
			"application",
			`[+ 1 -2]`,
			[]expectedToken{
				{token.LBRACKET, "[", nil},
				{token.NAME, "+", nil},
				{token.INT, "1", int64(1)},
				{token.INT, "-2", int64(-2)},
				{token.RBRACKET, "]", nil},
			},
		},
		{
			"bare_minus_is_a_name",
			`- -x`,
			[]expectedToken{
				{token.NAME, "-", nil},
				{token.NAME, "-x", nil},
			},
		},
		{
			"digits_then_letters_split",
			`12ab`,
			[]expectedToken{
				{token.INT, "12", int64(12)},
				{token.NAME, "ab", nil},
			},
		},
		{
			"name_stops_only_at_space_and_bracket",
			`a"b; c]`,
			[]expectedToken{
				{token.NAME, `a"b;`, nil},
				{token.NAME, "c", nil},
				{token.RBRACKET, "]", nil},
			},
		},
		{
			"argument_reference_is_a_name",
			`:1 :0`,
			[]expectedToken{
				{token.NAME, ":1", nil},
				{token.NAME, ":0", nil},
			},
		},
		{
			"string_literal",
			`"hello world"`,
			[]expectedToken{
				{token.STRING, "hello world", "hello world"},
			},
		},
		{
			"string_escapes",
			`"a\tb\nc\"d\\e\qf"`,
			[]expectedToken{
				{token.STRING, "", "a\tb\nc\"d\\e\\qf"},
			},
		},
		{
			"nul_escape",
			`"a\0b"`,
			[]expectedToken{
				{token.STRING, "", "a\x00b"},
			},
		},
		{
			"comments",
			"1 ; the rest is ignored [\n2 ;; another\n",
			[]expectedToken{
				{token.INT, "1", int64(1)},
				{token.INT, "2", int64(2)},
			},
		},
		{
			"empty_input",
			"   \t\n ; just a comment",
			[]expectedToken{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			collect(t, tc.input, tc.want)
		})
	}
}

func TestLineTracking(t *testing.T) {
	l := lexer.New("1\n  2\n\n[")
	lines := []int{1, 2, 4}
	for i, want := range lines {
		tok := l.NextToken()
		if tok.Line != want {
			t.Errorf("token %d: line %d, want %d", i, tok.Line, want)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	for _, input := range []string{`"abc`, `"abc\`} {
		l := lexer.New(input)
		tok := l.NextToken()
		if tok.Type != token.ILLEGAL {
			t.Errorf("input %q: token %s, want ILLEGAL", input, tok.Type)
		}
	}
}

func TestIntegerOverflow(t *testing.T) {
	l := lexer.New("99999999999999999999")
	if tok := l.NextToken(); tok.Type != token.ILLEGAL {
		t.Errorf("token %s, want ILLEGAL", tok.Type)
	}
}
