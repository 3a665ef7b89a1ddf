// internal/calc/exec.go
package calc

import (
	"fmt"
	"math"
)

// Exec evaluates e against ctx. Assignments update ctx.
func Exec(ctx *Context, e Expr) (Value, error) {
	switch n := e.Node.(type) {
	case Number:
		return Raw(n.Value), nil

	case Ident:
		v, ok := ctx.Get(n.Name)
		if !ok {
			return Value{}, &UnboundVariableError{Name: n.Name}
		}
		return v, nil

	case Assign:
		v, err := Exec(ctx, n.Value)
		if err != nil {
			return Value{}, err
		}
		ctx.Set(n.Name.Name, v)
		return v, nil

	case Typecast:
		v, err := Exec(ctx, n.Value)
		if err != nil {
			return Value{}, err
		}
		// Unknown and incompatible units leave the value alone.
		unit, ok := ParseUnit(n.Unit.Name)
		if !ok {
			return v, nil
		}
		if c, ok := v.Convert(unit); ok {
			return c, nil
		}
		return v, nil

	case Binary:
		left, err := Exec(ctx, n.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := Exec(ctx, n.Right)
		if err != nil {
			return Value{}, err
		}
		return arith(n.Op, left, right)

	default:
		return Value{}, fmt.Errorf("%w: %T", ErrInvalidNode, e.Node)
	}
}

// arith converts both operands into the first unit among them and applies op.
// An operand whose unit cannot be converted takes part as a raw number.
func arith(op Op, left, right Value) (Value, error) {
	target := left.Unit
	if target == None {
		target = right.Unit
	}
	l := reconcile(left, target)
	r := reconcile(right, target)

	var n float64
	switch op {
	case OpAdd:
		n = l + r
	case OpSub:
		n = l - r
	case OpMul:
		n = l * r
	case OpDiv:
		n = l / r
	case OpMod:
		n = math.Mod(l, r)
	default:
		return Value{}, fmt.Errorf("%w: operator %d", ErrInvalidNode, int(op))
	}
	return Quantity(n, target), nil
}

func reconcile(v Value, target Unit) float64 {
	if c, ok := v.Convert(target); ok {
		return c.Amount
	}
	return v.Amount
}

// Eval parses and evaluates the first clause of src.
func Eval(ctx *Context, src string) (Value, error) {
	e, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return Exec(ctx, e)
}
