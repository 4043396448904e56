package liquid

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// TagFactory builds the node for one tag occurrence. markup is the tag
// text after its name; block tags consume their body through p.ParseBlock.
type TagFactory func(p *Parser, markup string, pos Position) (Node, error)

// TagRegistry maps tag names to factories. A later registration for the
// same name replaces the earlier one. Safe for concurrent use.
type TagRegistry struct {
	factories map[string]TagFactory
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewTagRegistry creates an empty registry
func NewTagRegistry(logger *zap.Logger) *TagRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TagRegistry{
		factories: make(map[string]TagFactory),
		logger:    logger,
	}
}

// StandardTagRegistry creates a registry holding the standard tags
func StandardTagRegistry(logger *zap.Logger) *TagRegistry {
	r := NewTagRegistry(logger)
	RegisterStandardTags(r)
	return r
}

// RegisterStandardTags adds assign, capture, comment, cycle, for, if,
// unless, case and include to r.
func RegisterStandardTags(r *TagRegistry) {
	r.Register(TagAssign, newAssignTag)
	r.Register(TagCapture, newCaptureTag)
	r.Register(TagComment, newCommentTag)
	r.Register(TagCycle, newCycleTag)
	r.Register(TagFor, newForTag)
	r.Register(TagIf, newIfTag)
	r.Register(TagUnless, newUnlessTag)
	r.Register(TagCase, newCaseTag)
	r.Register(TagInclude, newIncludeTag)
}

// Register adds or replaces the factory for name
func (r *TagRegistry) Register(name string, factory TagFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		r.logger.Warn(LogMsgTagReplaced, zap.String(LogFieldTag, name))
	} else {
		r.logger.Debug(LogMsgTagRegistered, zap.String(LogFieldTag, name))
	}
	r.factories[name] = factory
}

// Lookup returns the factory for name
func (r *TagRegistry) Lookup(name string) (TagFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[name]
	return f, ok
}

// Has reports whether name is registered
func (r *TagRegistry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered tag names in sorted order
func (r *TagRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the registry
func (r *TagRegistry) Clone() *TagRegistry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := NewTagRegistry(r.logger)
	for name, f := range r.factories {
		c.factories[name] = f
	}
	return c
}
