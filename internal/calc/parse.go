// internal/calc/parse.go
package calc

import (
	"strconv"

	"github.com/bethropolis/resolver/internal/types"
)

// Parser is a recursive descent parser over one line of text. Each call
// to Parse returns the next clause; callers keep calling until it reports
// ErrEndOfInput or stops advancing.
//
//	entry    := assign
//	assign   := IDENT '=' typecast | typecast
//	typecast := arith ((':' | 'in' | 'to') IDENT)*
//	arith    := primary (OPERATOR primary)*
//	primary  := (NUMBER | IDENT | '(' entry ')') unit?
//
// All operators share one precedence level and chain left to right.
type Parser struct {
	sc *Scanner
}

// NewParser returns a parser over src.
func NewParser(src string) *Parser {
	return &Parser{sc: NewScanner(src)}
}

// Offset is the byte offset of the next unparsed token.
func (p *Parser) Offset() int { return p.sc.Offset() }

// Parse returns the next clause.
func (p *Parser) Parse() (Expr, error) {
	return p.entry()
}

// Parse parses the first clause of src.
func Parse(src string) (Expr, error) {
	return NewParser(src).Parse()
}

func (p *Parser) skipSpace() error {
	return p.sc.Discard(KindWhitespace)
}

func (p *Parser) entry() (Expr, error) {
	if err := p.skipSpace(); err != nil {
		return Expr{}, err
	}
	return p.assign()
}

func (p *Parser) assign() (Expr, error) {
	tok, err := p.sc.Peek()
	if err != nil {
		return Expr{}, err
	}
	if tok.Kind != KindIdent {
		return p.typecast()
	}

	p.sc.Token()
	if err := p.skipSpace(); err != nil {
		return Expr{}, err
	}
	next, err := p.sc.Peek()
	if err != nil {
		return Expr{}, err
	}
	if next.Kind != KindAssign {
		// Not an assignment; hand the identifier back to primary.
		if !p.sc.Unread(tok) {
			return Expr{}, ErrAssertionFailed
		}
		return p.typecast()
	}

	p.sc.Token()
	if err := p.skipSpace(); err != nil {
		return Expr{}, err
	}
	rhs, err := p.typecast()
	if err != nil {
		return Expr{}, err
	}
	return Expr{
		Range: types.Range{Start: tok.Range.Start, End: rhs.Range.End},
		Node:  Assign{Name: Ident{Name: tok.Text}, Value: rhs},
	}, nil
}

func (p *Parser) typecast() (Expr, error) {
	lhs, err := p.arith()
	if err != nil {
		return Expr{}, err
	}
	for {
		if err := p.skipSpace(); err != nil {
			return Expr{}, err
		}
		tok, err := p.sc.Peek()
		if err != nil {
			return Expr{}, err
		}
		if !isCast(tok) {
			return lhs, nil
		}
		p.sc.Token()
		if err := p.skipSpace(); err != nil {
			return Expr{}, err
		}
		unit, err := p.sc.Peek()
		if err != nil {
			return Expr{}, err
		}
		if unit.Kind != KindIdent {
			return lhs, nil
		}
		p.sc.Token()
		lhs = Expr{
			Range: types.Range{Start: lhs.Range.Start, End: unit.Range.End},
			Node:  Typecast{Value: lhs, Unit: Ident{Name: unit.Text}, Explicit: true},
		}
	}
}

func isCast(tok Token) bool {
	switch tok.Kind {
	case KindSymbol:
		return true
	case KindIdent:
		return tok.Text == "in" || tok.Text == "to"
	}
	return false
}

func (p *Parser) arith() (Expr, error) {
	left, err := p.primary()
	if err != nil {
		return Expr{}, err
	}
	for {
		if err := p.skipSpace(); err != nil {
			return Expr{}, err
		}
		tok, err := p.sc.Peek()
		if err != nil {
			return Expr{}, err
		}
		if tok.Kind != KindOperator {
			return left, nil
		}
		p.sc.Token()
		op, ok := parseOp(tok.Text)
		if !ok {
			return Expr{}, ErrTokenNotMatched
		}

		if err := p.skipSpace(); err != nil {
			return Expr{}, err
		}
		next, err := p.sc.Peek()
		if err != nil {
			return Expr{}, err
		}
		// A dangling operator before prose or the end of the line
		// leaves the left operand as the clause.
		if next.Kind == KindEnd || next.Kind == KindVerbatim {
			return left, nil
		}

		right, err := p.primary()
		if err != nil {
			return Expr{}, err
		}
		left = Expr{
			Range: types.Range{Start: left.Range.Start, End: right.Range.End},
			Node:  Binary{Op: op, Left: left, Right: right},
		}
	}
}

func (p *Parser) primary() (Expr, error) {
	tok, err := p.sc.Token()
	if err != nil {
		return Expr{}, err
	}

	var e Expr
	switch tok.Kind {
	case KindEnd:
		return Expr{}, ErrEndOfInput
	case KindNumber:
		n, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return Expr{}, &ParseFloatError{Text: tok.Text, Err: err}
		}
		e = Expr{Range: tok.Range, Node: Number{Value: n}}
	case KindIdent:
		e = Expr{Range: tok.Range, Node: Ident{Name: tok.Text}}
	case KindLParen:
		inner, err := p.entry()
		if err != nil {
			return Expr{}, err
		}
		if err := p.skipSpace(); err != nil {
			return Expr{}, err
		}
		closing, err := p.sc.Token()
		if err != nil {
			return Expr{}, err
		}
		switch closing.Kind {
		case KindRParen:
		case KindEnd:
			return Expr{}, ErrEndOfInput
		default:
			return Expr{}, ErrTokenNotMatched
		}
		e = Expr{Range: types.Range{Start: tok.Range.Start, End: closing.Range.End}, Node: inner.Node}
	default:
		return Expr{}, ErrTokenNotMatched
	}

	return p.unitSuffix(e)
}

// unitSuffix wraps e in a cast when it is followed by a known unit name,
// as in "100 kg".
func (p *Parser) unitSuffix(e Expr) (Expr, error) {
	if err := p.skipSpace(); err != nil {
		return Expr{}, err
	}
	tok, err := p.sc.Peek()
	if err != nil {
		return Expr{}, err
	}
	if tok.Kind != KindIdent {
		return e, nil
	}
	if _, ok := ParseUnit(tok.Text); !ok {
		return e, nil
	}
	p.sc.Token()
	return Expr{
		Range: types.Range{Start: e.Range.Start, End: tok.Range.End},
		Node:  Typecast{Value: e, Unit: Ident{Name: tok.Text}},
	}, nil
}
