// internal/calc/token.go
package calc

import (
	"fmt"

	"github.com/bethropolis/resolver/internal/types"
)

// Kind classifies a scanned token.
type Kind int

const (
	KindEnd        Kind = iota // end of input
	KindVerbatim               // prose the grammar does not interpret
	KindWhitespace             // a run of whitespace
	KindIdent                  // [letter_][letter digit _]*
	KindNumber                 // [0-9]+(\.[0-9]+)?
	KindOperator               // a run of + - * / %
	KindAssign                 // =
	KindLParen                 // (
	KindRParen                 // )
	KindSymbol                 // : (unit cast)
)

var kindNames = [...]string{
	KindEnd:        "End",
	KindVerbatim:   "Verbatim",
	KindWhitespace: "Whitespace",
	KindIdent:      "Ident",
	KindNumber:     "Number",
	KindOperator:   "Operator",
	KindAssign:     "Assign",
	KindLParen:     "LParen",
	KindRParen:     "RParen",
	KindSymbol:     "Symbol",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit. Range holds the byte span in the source;
// Text is the token's content, with escapes resolved for Verbatim tokens.
type Token struct {
	Kind  Kind
	Text  string
	Range types.Range
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Range)
}
