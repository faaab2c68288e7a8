package lexer

import (
	"strconv"

	"github.com/zinclang/zinc/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Line: l.line, Column: l.column}
	case '[':
		tok := newToken(token.LBRACKET, l.ch, l.line, l.column)
		l.readChar()
		return tok
	case ']':
		tok := newToken(token.RBRACKET, l.ch, l.line, l.column)
		l.readChar()
		return tok
	case '"':
		startLine, startCol := l.line, l.column
		content, ok := l.readString()
		l.readChar()
		if !ok {
			return token.Token{Type: token.ILLEGAL, Literal: `expected closing '"'`, Line: l.line, Column: l.column}
		}
		return token.Token{Type: token.STRING, Lexeme: content, Literal: content, Line: startLine, Column: startCol}
	}

	if isDigit(l.ch) || (l.ch == '-' && isDigit(l.peekChar())) {
		return l.readNumber()
	}
	return l.readName()
}

// skipWhitespace consumes whitespace and `;` line comments, which may be
// interleaved arbitrarily.
func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch == ';' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		break
	}
}

// readString consumes a double-quoted string, resolving escape sequences.
// A backslash before any character other than n, r, t, 0, `"` or `\` keeps
// both the backslash and the character. Returns false if the input ends
// before the closing quote.
func (l *Lexer) readString() (string, bool) {
	var out []byte
	for {
		l.readChar()
		switch l.ch {
		case 0:
			return string(out), false
		case '"':
			return string(out), true
		case '\\':
			l.readChar()
			if l.ch == 0 {
				return string(out), false
			}
			switch l.ch {
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case '0':
				out = append(out, 0)
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			default:
				out = append(out, '\\', l.ch)
			}
		default:
			out = append(out, l.ch)
		}
	}
}

func (l *Lexer) readNumber() token.Token {
	startLine, startCol := l.line, l.column
	position := l.position
	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[position:l.position]
	val, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: "bad integer", Line: startLine, Column: startCol}
	}
	return token.Token{Type: token.INT, Lexeme: lexeme, Literal: val, Line: startLine, Column: startCol}
}

// readName consumes a run of characters up to the next whitespace or `]`.
// Anything that is not an integer, list or string is a name, so names may
// contain characters like `[`, `"` or `;` after the first one.
func (l *Lexer) readName() token.Token {
	startLine, startCol := l.line, l.column
	position := l.position
	for l.ch != 0 && !isSpace(l.ch) && l.ch != ']' {
		l.readChar()
	}
	lexeme := l.input[position:l.position]
	return token.Token{Type: token.NAME, Lexeme: lexeme, Literal: lexeme, Line: startLine, Column: startCol}
}

func newToken(tokenType token.TokenType, ch byte, line, col int) token.Token {
	literal := string(ch)
	return token.Token{Type: tokenType, Lexeme: literal, Literal: literal, Line: line, Column: col}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}
