// internal/calc/value.go
package calc

import (
	"math"
	"strconv"
)

// Value is a quantity with an optional unit.
type Value struct {
	Amount float64
	Unit   Unit
}

// Raw returns an untyped value.
func Raw(n float64) Value { return Value{Amount: n} }

// Quantity returns n expressed in u.
func Quantity(n float64, u Unit) Value { return Value{Amount: n, Unit: u} }

// Typed reports whether v carries a unit.
func (v Value) Typed() bool { return v.Unit != None }

// Convert expresses v in the unit to.
// An untyped value simply takes on the new unit and converting to None
// drops the unit. ok is false when v's unit cannot be converted to to.
func (v Value) Convert(to Unit) (Value, bool) {
	switch {
	case v.Unit == None, to == None:
		return Value{Amount: v.Amount, Unit: to}, true
	case v.Unit == to:
		return v, true
	}
	f, ok := v.Unit.Factor(to)
	if !ok {
		return v, false
	}
	return Value{Amount: v.Amount * f, Unit: to}, true
}

// Base expresses v in the smallest unit of its family.
func (v Value) Base() Value {
	if v.Unit == None {
		return v
	}
	b, _ := v.Convert(v.Unit.Base())
	return b
}

// Pack climbs to larger units of the same family for as long as the
// quantity reaches the next unit's threshold.
func (v Value) Pack() Value {
	for {
		step, ok := packSteps[v.Unit]
		if !ok || math.Abs(v.Amount) < step.threshold {
			return v
		}
		v = Value{Amount: v.Amount / step.divisor, Unit: step.next}
	}
}

// String formats the packed value. Imperial and untyped quantities render
// an exact eighth as a fraction; metric quantities render as decimals.
func (v Value) String() string {
	return v.Format(true)
}

// Format is like String but fractions can be disabled.
func (v Value) Format(fractions bool) string {
	return v.Pack().FormatExact(fractions)
}

// FormatExact formats v in its own unit without packing it.
func (v Value) FormatExact(fractions bool) string {
	p := v
	var qty string
	if fractions && (p.Unit == None || !units[p.Unit].metric) {
		qty = formatQuantity(p.Amount)
	} else {
		qty = formatFloat(p.Amount)
	}
	if p.Unit == None {
		return qty
	}
	return qty + " " + p.Unit.String()
}

var eighths = map[float64]string{
	0.125: "1/8",
	0.25:  "1/4",
	0.375: "3/8",
	0.5:   "1/2",
	0.625: "5/8",
	0.75:  "3/4",
	0.875: "7/8",
}

func formatQuantity(n float64) string {
	sign := ""
	a := n
	if n < 0 {
		sign, a = "-", -n
	}
	whole := math.Floor(a)
	frac, ok := eighths[a-whole]
	if !ok {
		return formatFloat(n)
	}
	if whole > 0 {
		return sign + formatFloat(whole) + " " + frac
	}
	return sign + frac
}

func formatFloat(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
