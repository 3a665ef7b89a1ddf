// internal/calc/expr.go
package calc

import (
	"fmt"

	"github.com/bethropolis/resolver/internal/types"
)

// Expr is a parsed expression together with the byte range of the
// source it was parsed from.
type Expr struct {
	Range types.Range
	Node  Node
}

func (e Expr) String() string {
	if e.Node == nil {
		return "<nil>"
	}
	return e.Node.String()
}

// Node is one of Ident, Number, Assign, Typecast or Binary.
type Node interface {
	fmt.Stringer
	node()
}

// Ident references a variable or names a unit.
type Ident struct {
	Name string
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Assign binds the result of Value to Name.
type Assign struct {
	Name  Ident
	Value Expr
}

// Typecast converts Value into the unit named by Unit. Explicit is set
// for `:`, `in` and `to` casts; a bare trailing unit leaves it unset.
type Typecast struct {
	Value    Expr
	Unit     Ident
	Explicit bool
}

// Op is a binary arithmetic operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

// Binary applies Op to Left and Right.
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (Ident) node()    {}
func (Number) node()   {}
func (Assign) node()   {}
func (Typecast) node() {}
func (Binary) node()   {}

func (n Ident) String() string    { return n.Name }
func (n Number) String() string   { return formatFloat(n.Value) }
func (n Assign) String() string   { return fmt.Sprintf("(= %s %s)", n.Name, n.Value) }
func (n Typecast) String() string { return fmt.Sprintf("(: %s %s)", n.Value, n.Unit) }
func (n Binary) String() string   { return fmt.Sprintf("(%s %s %s)", n.Op, n.Left, n.Right) }

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	default:
		return "?"
	}
}

func parseOp(s string) (Op, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	case "*":
		return OpMul, true
	case "/":
		return OpDiv, true
	case "%":
		return OpMod, true
	}
	return 0, false
}
