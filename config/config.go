// Package config handles jscope.toml and jscope.yaml configuration.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/t14raptor/go-scope/report"
	"github.com/t14raptor/go-scope/resolver"
)

// FileNames are the configuration files FindAndLoad looks for, in order.
var FileNames = []string{"jscope.toml", "jscope.yaml", "jscope.yml"}

// Config holds resolver and output settings.
type Config struct {
	// Strict resolves every file as strict mode code.
	Strict bool `toml:"strict" yaml:"strict"`
	// Globals are extra predeclared names, e.g. from a bundler environment.
	Globals []string `toml:"globals" yaml:"globals"`
	// DefaultGlobals predeclares the builtin and host globals.
	DefaultGlobals bool `toml:"default-globals" yaml:"default-globals"`
	// Suggestions enables "did you mean" hints.
	Suggestions bool `toml:"suggestions" yaml:"suggestions"`

	Format    string `toml:"format" yaml:"format"`
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`

	// Path is the file the configuration was loaded from (set at load time).
	Path string `toml:"-" yaml:"-"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		DefaultGlobals: true,
		Suggestions:    true,
		Format:         string(report.FormatText),
	}
}

// Load parses the configuration file at path. The decoder is chosen by
// extension; unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", path)
	}
	defer f.Close()

	c := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.NewDecoder(f).Decode(c)
		if err != nil {
			return nil, errors.Wrapf(err, "parse error in %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("unknown key %q in %s", undecoded[0].String(), path)
		}
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(f)
		decoder.KnownFields(true)
		if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrapf(err, "parse error in %s", path)
		}
	default:
		return nil, errors.Errorf("unsupported configuration format %q", ext)
	}

	if c.Path, err = filepath.Abs(path); err != nil {
		return nil, errors.Wrapf(err, "cannot resolve path %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find a configuration file, then
// loads it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return Load(path)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

func (c *Config) Validate() error {
	if c.Format != "" {
		if _, err := report.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	if c.Verbosity < 0 {
		return errors.Errorf("verbosity must not be negative, got %d", c.Verbosity)
	}
	for _, name := range c.Globals {
		if name == "" || strings.ContainsAny(name, " \t\n.") {
			return errors.Errorf("invalid global name %q", name)
		}
	}
	return nil
}

// Options converts the configuration into resolver options.
func (c *Config) Options() []resolver.Option {
	return []resolver.Option{
		resolver.WithStrict(c.Strict),
		resolver.WithDefaultGlobals(c.DefaultGlobals),
		resolver.WithSuggestions(c.Suggestions),
		resolver.WithGlobals(c.Globals...),
	}
}
