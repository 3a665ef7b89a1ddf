// internal/calc/clause.go
package calc

import (
	"errors"
	"strings"

	"github.com/bethropolis/resolver/internal/types"
)

// Clause is one expression found in a line and the outcome of evaluating it.
type Clause struct {
	Range  types.Range // byte range within the line
	Source string
	Expr   Expr
	Value  Value
	Err    error // evaluation error; the clause has no result
}

// OK reports whether the clause produced a value.
func (c Clause) OK() bool { return c.Err == nil }

// Format formats the clause's value for display. A value that an explicit
// cast converted stays in the requested unit; any other value is packed.
func (c Clause) Format(fractions bool) string {
	if unit, ok := castUnit(c.Expr); ok && c.Value.Unit == unit {
		return c.Value.FormatExact(fractions)
	}
	return c.Value.Format(fractions)
}

// castUnit returns the known unit of an explicit cast at the top of e,
// looking through assignments.
func castUnit(e Expr) (Unit, bool) {
	switch n := e.Node.(type) {
	case Assign:
		return castUnit(n.Value)
	case Typecast:
		if !n.Explicit {
			return None, false
		}
		return ParseUnit(n.Unit.Name)
	}
	return None, false
}

// Evaluate parses line into clauses and evaluates each against ctx in
// order, so assignments are visible to later clauses. Text that does not
// parse is skipped. Clauses that parse but fail to evaluate are returned
// with Err set.
func Evaluate(ctx *Context, line string) []Clause {
	var out []Clause
	p := NewParser(line)
	for {
		start := p.Offset()
		e, err := p.Parse()
		if err != nil {
			if errors.Is(err, ErrEndOfInput) || p.Offset() <= start {
				return out
			}
			continue
		}

		v, err := Exec(ctx, e)
		out = append(out, Clause{
			Range:  e.Range,
			Source: line[e.Range.Start:e.Range.End],
			Expr:   e,
			Value:  v,
			Err:    err,
		})
		if p.Offset() <= start {
			return out
		}
	}
}

// Results returns the formatted values of the successful clauses in line.
func Results(ctx *Context, line string) []string {
	var out []string
	for _, c := range Evaluate(ctx, line) {
		if c.OK() {
			out = append(out, c.Format(true))
		}
	}
	return out
}

// Render describes every successful clause in line as "source => result",
// joined by "; ".
func Render(ctx *Context, line string) string {
	var parts []string
	for _, c := range Evaluate(ctx, line) {
		if c.OK() {
			parts = append(parts, c.Source+" => "+c.Format(true))
		}
	}
	return strings.Join(parts, "; ")
}
