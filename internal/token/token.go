package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	INT    = "INT"    // 42, -17
	STRING = "STRING" // "hello"
	NAME   = "NAME"   // add2, +, :1

	LBRACKET = "LBRACKET" // [
	RBRACKET = "RBRACKET" // ]
)

type Token struct {
	Type    TokenType
	Lexeme  string      // raw source text of the token
	Literal interface{} // int64 for INT, processed text for STRING, error text for ILLEGAL
	Line    int
	Column  int
}
