package liquid

import (
	"go.uber.org/zap"

	"github.com/itsatony/go-liquid/internal"
)

// Option is a functional option for configuring a Template.
type Option func(*templateConfig)

type templateConfig struct {
	grammar         *internal.Grammar
	tags            *TagRegistry
	fileSystem      FileSystem
	logger          *zap.Logger
	filters         []FilterSet
	standardFilters bool
	maxIncludeDepth int
	err             error
}

func defaultTemplateConfig() *templateConfig {
	return &templateConfig{
		grammar:         internal.DefaultGrammar(),
		fileSystem:      BlankFileSystem{},
		standardFilters: true,
		maxIncludeDepth: DefaultMaxIncludeDepth,
	}
}

// finish fills the collaborators that depend on other options
func (c *templateConfig) finish() {
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.tags == nil {
		c.tags = StandardTagRegistry(c.logger)
	}
	if c.fileSystem == nil {
		c.fileSystem = BlankFileSystem{}
	}
}

// WithFileSystem sets the collaborator the include tag loads templates from.
// Default: BlankFileSystem (includes are refused)
func WithFileSystem(fs FileSystem) Option {
	return func(c *templateConfig) {
		c.fileSystem = fs
	}
}

// WithLogger sets the logger.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *templateConfig) {
		c.logger = logger
	}
}

// WithFilters registers filter sets on the template. Later sets win on
// name collisions.
func WithFilters(sets ...FilterSet) Option {
	return func(c *templateConfig) {
		c.filters = append(c.filters, sets...)
	}
}

// WithoutStandardFilters leaves the built-in filters unregistered
func WithoutStandardFilters() Option {
	return func(c *templateConfig) {
		c.standardFilters = false
	}
}

// WithTagRegistry replaces the tag registry.
// Default: StandardTagRegistry
func WithTagRegistry(r *TagRegistry) Option {
	return func(c *templateConfig) {
		c.tags = r
	}
}

// WithDelimiters sets custom tag and variable delimiters.
// Default: "{%" "%}" and "{{" "}}"
func WithDelimiters(tagOpen, tagClose, varOpen, varClose string) Option {
	return func(c *templateConfig) {
		g, err := internal.NewGrammar(tagOpen, tagClose, varOpen, varClose)
		if err != nil {
			c.err = NewConfigError(ErrMsgInvalidDelimiters, err)
			return
		}
		c.grammar = g
	}
}

// WithMaxIncludeDepth bounds include nesting.
// Default: 32
func WithMaxIncludeDepth(depth int) Option {
	return func(c *templateConfig) {
		if depth > 0 {
			c.maxIncludeDepth = depth
		}
	}
}

// RenderOption configures a single Render call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	filters   []FilterSet
	registers map[string]map[string]any
}

// WithRenderFilters adds filter sets for one render. They take precedence
// over the template's filters and are forgotten afterwards.
func WithRenderFilters(sets ...FilterSet) RenderOption {
	return func(c *renderConfig) {
		c.filters = append(c.filters, sets...)
	}
}

// WithRegisters seeds the render's registers
func WithRegisters(registers map[string]map[string]any) RenderOption {
	return func(c *renderConfig) {
		c.registers = registers
	}
}
