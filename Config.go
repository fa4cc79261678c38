package routegen

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rohanthewiz/serr"
)

// Config drives one generation run. It is normally loaded from a
// routegen.toml next to the route source, with individual fields
// overridable from the command line.
type Config struct {
	// Source is the route-table file to compile.
	Source string `toml:"source"`

	// Output is the generated Go file. Defaults to the source name with
	// a _gen.go suffix, in the source's directory.
	Output string `toml:"output"`

	// Package is the package clause of the generated file.
	Package string `toml:"package"`

	// Func names the generated function. Defaults to BuildRoutes.
	Func string `toml:"func"`

	// Imports lists extra import paths the generated file needs,
	// typically the packages holding qualified handler templates.
	Imports []string `toml:"imports"`

	Router RouterConfig `toml:"router"`
}

// RouterConfig locates the router library the generated code builds on.
type RouterConfig struct {
	// Import is the router package's import path. Required for file output.
	Import string `toml:"import"`

	// Alias is the identifier the emitted chain uses, e.g. "routing" in
	// routing.New(). Defaults to the base of Import, else "routing".
	Alias string `toml:"alias"`

	// Type is the builder type the generated function returns a pointer
	// to. Defaults to "Router".
	Type string `toml:"type"`
}

// LoadConfig reads and validates a TOML config file, filling defaults.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, serr.Wrap(err, "reading routegen config")
	}

	var cfg Config
	if err = toml.Unmarshal(data, &cfg); err != nil {
		return nil, serr.Wrap(err, "parsing routegen config")
	}

	// Paths in the config are relative to the config file.
	dir := filepath.Dir(configPath)
	if cfg.Source != "" && !filepath.IsAbs(cfg.Source) {
		cfg.Source = filepath.Join(dir, cfg.Source)
	}
	if cfg.Output != "" && !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(dir, cfg.Output)
	}

	cfg.LoadDefaults()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefaults fills the derivable fields. Safe to call repeatedly.
func (c *Config) LoadDefaults() {
	if c.Func == "" {
		c.Func = "BuildRoutes"
	}
	if c.Router.Type == "" {
		c.Router.Type = "Router"
	}
	if c.Router.Alias == "" {
		if c.Router.Import != "" {
			c.Router.Alias = path.Base(c.Router.Import)
		} else {
			c.Router.Alias = "routing"
		}
	}
	if c.Output == "" && c.Source != "" {
		base := strings.TrimSuffix(filepath.Base(c.Source), filepath.Ext(c.Source))
		c.Output = filepath.Join(filepath.Dir(c.Source), base+"_gen.go")
	}
}

// Validate checks that every populated field can appear in generated Go.
// Required-field checks happen at the point of use (CompileFile), since
// expression-only compilation needs almost nothing.
func (c *Config) Validate() error {
	for name, v := range map[string]string{
		"package":      c.Package,
		"func":         c.Func,
		"router.alias": c.Router.Alias,
		"router.type":  c.Router.Type,
	} {
		if v != "" && !isGoIdent(v) {
			return serr.New(fmt.Sprintf("config %s: %q is not a valid Go identifier", name, v))
		}
	}
	return nil
}

func isGoIdent(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
