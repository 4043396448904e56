package liquid

import "github.com/itsatony/go-liquid/internal"

// Drop lets a host value compute or proxy properties lazily. Resolution asks
// HasKey first, reads through Get when the property exists and otherwise
// falls back to Fallback.
type Drop interface {
	HasKey(name string) bool
	Get(name string) any
	Fallback(name string) any
}

// ContextDrop is a drop whose properties depend on the rendering Context.
// The context is handed over on every read and belongs to that read only:
// one drop value may be shared by concurrent renders, each passing its own
// context. Resolution prefers ContextDrop over Drop.
type ContextDrop interface {
	HasKey(name string) bool
	GetContext(ctx *Context, name string) any
	FallbackContext(ctx *Context, name string) any
}

// Iterable lets a host value act as a sequence in for loops and sequence filters
type Iterable = internal.Iterable

// BaseDrop is an embeddable Drop with no properties. Types embedding it
// override the methods they need.
type BaseDrop struct{}

// HasKey implements Drop
func (BaseDrop) HasKey(string) bool {
	return false
}

// Get implements Drop
func (BaseDrop) Get(string) any {
	return nil
}

// Fallback implements Drop
func (BaseDrop) Fallback(string) any {
	return nil
}

// FuncDrop exposes lazily computed properties. Each function runs on every
// read, so properties may return fresh values (including fresh drops).
type FuncDrop map[string]func() any

// HasKey implements Drop
func (d FuncDrop) HasKey(name string) bool {
	_, ok := d[name]
	return ok
}

// Get implements Drop
func (d FuncDrop) Get(name string) any {
	if fn, ok := d[name]; ok {
		return fn()
	}
	return nil
}

// Fallback implements Drop
func (d FuncDrop) Fallback(string) any {
	return nil
}
