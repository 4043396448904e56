package liquid

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/itsatony/go-liquid/internal"
)

// Config is the YAML representation of a template setup.
//
//	file_system:
//	  driver: local
//	  connection: ./templates
//	  cache:
//	    ttl: 5m
//	    max_entries: 500
//	delimiters:
//	  tag: ["{%", "%}"]
//	  variable: ["{{", "}}"]
//	filters:
//	  scripts: [filters/money.star]
//	max_include_depth: 16
type Config struct {
	FileSystem      FileSystemConfig `yaml:"file_system"`
	Delimiters      DelimitersConfig `yaml:"delimiters"`
	Filters         FiltersConfig    `yaml:"filters"`
	MaxIncludeDepth int              `yaml:"max_include_depth"`

	// baseDir anchors relative paths when loaded from a file
	baseDir string
}

// FileSystemConfig selects a registered file system driver
type FileSystemConfig struct {
	Driver     string                 `yaml:"driver"`
	Connection string                 `yaml:"connection"`
	Cache      *FileSystemCacheConfig `yaml:"cache"`
}

// FileSystemCacheConfig wraps the file system in a CachedFileSystem when present
type FileSystemCacheConfig struct {
	TTL         time.Duration `yaml:"ttl"`
	MaxEntries  int           `yaml:"max_entries"`
	NegativeTTL time.Duration `yaml:"negative_ttl"`
}

// DelimitersConfig holds opening and closing delimiter pairs
type DelimitersConfig struct {
	Tag      []string `yaml:"tag"`
	Variable []string `yaml:"variable"`
}

// FiltersConfig lists Starlark filter scripts
type FiltersConfig struct {
	Scripts []string `yaml:"scripts"`
}

// LoadConfig reads a YAML configuration file. Relative local roots and
// script paths are resolved against the file's directory.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(subject(ErrMsgConfigRead, path), err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	cfg.baseDir = filepath.Dir(path)
	return cfg, nil
}

// ParseConfig decodes YAML configuration data
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigError(ErrMsgConfigParse, err)
	}
	return &cfg, nil
}

func (c *Config) resolvePath(p string) string {
	if c.baseDir == "" || p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.baseDir, p)
}

// Options turns the configuration into template options, opening the file
// system and loading filter scripts.
func (c *Config) Options(logger *zap.Logger) ([]Option, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := []Option{WithLogger(logger)}

	if c.FileSystem.Driver != "" {
		fs, err := c.openFileSystem(logger)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithFileSystem(fs))
	}

	if len(c.Delimiters.Tag) > 0 || len(c.Delimiters.Variable) > 0 {
		opt, err := c.delimiterOption()
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}

	for _, script := range c.Filters.Scripts {
		path := c.resolvePath(script)
		set, err := NewStarlarkFilters(path, nil)
		if err != nil {
			return nil, err
		}
		logger.Debug(LogMsgScriptLoaded, zap.String(LogFieldScript, path), zap.Int(LogFieldFilters, len(set)))
		opts = append(opts, WithFilters(set))
	}

	if c.MaxIncludeDepth > 0 {
		opts = append(opts, WithMaxIncludeDepth(c.MaxIncludeDepth))
	}
	return opts, nil
}

func (c *Config) openFileSystem(logger *zap.Logger) (FileSystem, error) {
	connection := c.FileSystem.Connection
	if c.FileSystem.Driver == FileSystemDriverLocal {
		connection = c.resolvePath(connection)
	}

	fs, err := OpenFileSystem(c.FileSystem.Driver, connection)
	if err != nil {
		return nil, NewConfigError(subject(ErrMsgConfigFileSystem, c.FileSystem.Driver), err)
	}
	if cache := c.FileSystem.Cache; cache != nil {
		fs = NewCachedFileSystem(fs, CacheConfig{
			TTL:         cache.TTL,
			MaxEntries:  cache.MaxEntries,
			NegativeTTL: cache.NegativeTTL,
		}, logger)
	}
	return fs, nil
}

func (c *Config) delimiterOption() (Option, error) {
	def := internal.DefaultGrammar()
	tag := []string{def.TagStart, def.TagEnd}
	variable := []string{def.VariableStart, def.VariableEnd}

	if len(c.Delimiters.Tag) > 0 {
		if len(c.Delimiters.Tag) != 2 {
			return nil, NewConfigError(ErrMsgConfigDelimiters, nil)
		}
		tag = c.Delimiters.Tag
	}
	if len(c.Delimiters.Variable) > 0 {
		if len(c.Delimiters.Variable) != 2 {
			return nil, NewConfigError(ErrMsgConfigDelimiters, nil)
		}
		variable = c.Delimiters.Variable
	}
	return WithDelimiters(tag[0], tag[1], variable[0], variable[1]), nil
}
