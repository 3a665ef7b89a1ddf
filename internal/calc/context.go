// internal/calc/context.go
package calc

import (
	"math"
	"sort"
)

// Context holds variable bindings for one evaluation session.
// It is not safe for concurrent use.
type Context struct {
	vars map[string]Value
}

// DefaultConstants are bound in every new Context.
var DefaultConstants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// NewContext returns a context seeded with DefaultConstants and any
// extra constants. Extra constants override the defaults.
func NewContext(constants map[string]float64) *Context {
	c := &Context{vars: make(map[string]Value, len(DefaultConstants)+len(constants))}
	for name, v := range DefaultConstants {
		c.vars[name] = Raw(v)
	}
	for name, v := range constants {
		c.vars[name] = Raw(v)
	}
	return c
}

// Get returns the value bound to name.
func (c *Context) Get(name string) (Value, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Set binds name to v, replacing any previous binding.
func (c *Context) Set(name string, v Value) {
	c.vars[name] = v
}

// Names returns the bound names in sorted order.
func (c *Context) Names() []string {
	names := make([]string, 0, len(c.vars))
	for name := range c.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
