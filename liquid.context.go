package liquid

import (
	"strings"

	"go.uber.org/zap"

	"github.com/itsatony/go-liquid/internal"
)

// Context is the evaluation environment of one render call: a stack of
// variable scopes searched innermost-first, the filter sets available to
// variables, and named registers holding state for stateful tags.
// A Context belongs to a single render and is not safe for concurrent use.
type Context struct {
	scopes    []map[string]any
	filters   []FilterSet
	registers map[string]map[string]any
	logger    *zap.Logger
}

// NewContext creates a context whose root scope holds a copy of assigns.
// registers seeds the register namespaces; both may be nil.
func NewContext(assigns map[string]any, registers map[string]map[string]any, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}

	root := make(map[string]any, len(assigns))
	for k, v := range assigns {
		root[k] = v
	}

	regs := make(map[string]map[string]any, len(registers))
	for ns, values := range registers {
		copied := make(map[string]any, len(values))
		for k, v := range values {
			copied[k] = v
		}
		regs[ns] = copied
	}

	return &Context{
		scopes:    []map[string]any{root},
		registers: regs,
		logger:    logger,
	}
}

// Get resolves an expression: quoted strings, numbers and the true, false
// and nil keywords are literals; anything else is a dotted variable path.
// Unbound names resolve to nil.
func (c *Context) Get(expr string) any {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil
	}
	if v, ok := internal.ParseLiteral(expr); ok {
		return v
	}
	return c.resolve(expr)
}

// Has reports whether expr resolves to a non-nil value
func (c *Context) Has(expr string) bool {
	return c.Get(expr) != nil
}

func (c *Context) resolve(path string) any {
	parts := strings.Split(path, internal.StrAttributeSeparator)

	current, ok := c.lookup(parts[0])
	if !ok {
		return nil
	}
	for _, part := range parts[1:] {
		if current == nil {
			return nil
		}
		current = c.property(current, part)
	}
	return current
}

// lookup finds name in the innermost scope that binds it
func (c *Context) lookup(name string) (any, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if v, ok := c.scopes[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name in the innermost scope
func (c *Context) Set(name string, value any) {
	c.scopes[len(c.scopes)-1][name] = value
}

// Push adds an empty scope on top of the stack
func (c *Context) Push() {
	c.scopes = append(c.scopes, make(map[string]any))
}

// Pop removes the innermost scope. The root scope is never removed.
func (c *Context) Pop() {
	if len(c.scopes) == 1 {
		c.logger.Warn(LogMsgScopeUnderflow)
		return
	}
	c.scopes[len(c.scopes)-1] = nil
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// Depth returns the number of scopes on the stack
func (c *Context) Depth() int {
	return len(c.scopes)
}

// AddFilters registers filter sets. For a name provided by several sets,
// the most recently added set wins.
func (c *Context) AddFilters(sets ...FilterSet) {
	for _, set := range sets {
		if len(set) > 0 {
			c.filters = append(c.filters, set)
		}
	}
}

// HasFilter reports whether any registered set provides name
func (c *Context) HasFilter(name string) bool {
	_, ok := c.filter(name)
	return ok
}

func (c *Context) filter(name string) (FilterFunc, bool) {
	for i := len(c.filters) - 1; i >= 0; i-- {
		if fn, ok := c.filters[i][name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// Invoke applies the filter name to input. An unregistered name returns
// input unchanged.
func (c *Context) Invoke(name string, input any, args ...any) (any, error) {
	fn, ok := c.filter(name)
	if !ok {
		c.logger.Debug(LogMsgFilterMissing, zap.String(LogFieldFilter, name))
		return input, nil
	}
	out, err := fn(input, args...)
	if err != nil {
		return nil, NewFilterError(name, err)
	}
	return out, nil
}

// Registers returns the register namespace ns, creating it on first use
func (c *Context) Registers(ns string) map[string]any {
	reg, ok := c.registers[ns]
	if !ok {
		reg = make(map[string]any)
		c.registers[ns] = reg
	}
	return reg
}

// Logger returns the render logger
func (c *Context) Logger() *zap.Logger {
	return c.logger
}
