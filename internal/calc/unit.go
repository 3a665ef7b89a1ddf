// internal/calc/unit.go
package calc

import "strings"

// Unit is a unit of measure. None marks an untyped quantity.
type Unit int

const (
	None Unit = iota

	// Imperial volume
	Teaspoon
	Tablespoon
	Cup
	Quart
	Gallon

	// Metric volume
	Liter
	Deciliter
	Centiliter
	Milliliter

	// Mass
	Gram
	Kilogram

	numUnits
)

// Family groups units that can be converted into one another.
type Family int

const (
	FamilyNone Family = iota
	FamilyImperialVolume
	FamilyMetricVolume
	FamilyMass
)

type unitInfo struct {
	name   string
	family Family
	base   Unit    // smallest unit of the family
	scale  float64 // size in base units
	metric bool    // formatted as a plain decimal
}

var units = [numUnits]unitInfo{
	None:       {name: "none"},
	Teaspoon:   {name: "tsp", family: FamilyImperialVolume, base: Teaspoon, scale: 1},
	Tablespoon: {name: "tbsp", family: FamilyImperialVolume, base: Teaspoon, scale: 3},
	Cup:        {name: "cup", family: FamilyImperialVolume, base: Teaspoon, scale: 48},
	Quart:      {name: "quart", family: FamilyImperialVolume, base: Teaspoon, scale: 192},
	Gallon:     {name: "gallon", family: FamilyImperialVolume, base: Teaspoon, scale: 768},
	Liter:      {name: "l", family: FamilyMetricVolume, base: Milliliter, scale: 1000, metric: true},
	Deciliter:  {name: "dl", family: FamilyMetricVolume, base: Milliliter, scale: 100, metric: true},
	Centiliter: {name: "cl", family: FamilyMetricVolume, base: Milliliter, scale: 10, metric: true},
	Milliliter: {name: "ml", family: FamilyMetricVolume, base: Milliliter, scale: 1, metric: true},
	Gram:       {name: "g", family: FamilyMass, base: Gram, scale: 1, metric: true},
	Kilogram:   {name: "kg", family: FamilyMass, base: Gram, scale: 1000, metric: true},
}

// factors[from][to] multiplies a quantity in `from` into `to`.
// A zero entry means the units belong to different families.
var factors [numUnits][numUnits]float64

// packSteps describes how pack climbs from a unit to the next larger one:
// once a quantity reaches threshold it is divided by divisor.
var packSteps = map[Unit]struct {
	next      Unit
	threshold float64
	divisor   float64
}{
	Teaspoon:   {Tablespoon, 3, 3},
	Tablespoon: {Cup, 4, 16},
	Cup:        {Quart, 4, 4},
	Quart:      {Gallon, 4, 4},
	Milliliter: {Centiliter, 10, 10},
	Centiliter: {Deciliter, 10, 10},
	Deciliter:  {Liter, 10, 10},
	Gram:       {Kilogram, 1000, 1000},
}

func init() {
	for from := Teaspoon; from < numUnits; from++ {
		for to := Teaspoon; to < numUnits; to++ {
			if units[from].family != units[to].family {
				continue
			}
			factors[from][to] = units[from].scale / units[to].scale
		}
	}
}

// ParseUnit looks up a unit by its short name, case-insensitively.
func ParseUnit(name string) (Unit, bool) {
	name = strings.ToLower(name)
	for u := None; u < numUnits; u++ {
		if units[u].name == name {
			return u, true
		}
	}
	return None, false
}

// Units lists every typed unit in declaration order.
func Units() []Unit {
	out := make([]Unit, 0, numUnits-1)
	for u := Teaspoon; u < numUnits; u++ {
		out = append(out, u)
	}
	return out
}

func (u Unit) valid() bool { return u >= None && u < numUnits }

func (u Unit) String() string {
	if !u.valid() {
		return "unknown"
	}
	return units[u].name
}

// Family returns the conversion family of u.
func (u Unit) Family() Family {
	if !u.valid() {
		return FamilyNone
	}
	return units[u].family
}

// Base returns the smallest unit in u's family.
func (u Unit) Base() Unit {
	if !u.valid() || u == None {
		return None
	}
	return units[u].base
}

// Factor returns the multiplier converting a quantity in u into to.
// ok is false when the two units cannot be converted.
func (u Unit) Factor(to Unit) (f float64, ok bool) {
	if !u.valid() || !to.valid() || u == None || to == None {
		return 0, false
	}
	f = factors[u][to]
	return f, f != 0
}

// CompatibleWith reports whether quantities in u can be converted to o.
func (u Unit) CompatibleWith(o Unit) bool {
	_, ok := u.Factor(o)
	return ok
}
