package cli

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/treestack/pkg/errors"
	"github.com/matzehuels/treestack/pkg/layout"
	"github.com/matzehuels/treestack/pkg/session"
	"github.com/matzehuels/treestack/pkg/stack"
	"github.com/matzehuels/treestack/pkg/tree"
)

// Config is the on-disk configuration. Every field is optional.
//
//	tree = "complete"
//	duplicates = "record"
//	status_ttl = "3s"
//
//	[layout]
//	level_height = 100
//
//	[render]
//	formats = ["svg", "json"]
type Config struct {
	Tree       string         `toml:"tree"`
	Duplicates string         `toml:"duplicates"`
	StatusTTL  time.Duration  `toml:"status_ttl"`
	Layout     layout.Options `toml:"layout"`
	Render     RenderConfig   `toml:"render"`
}

// RenderConfig holds defaults for the run command's outputs.
type RenderConfig struct {
	Types    []string `toml:"types"`
	Formats  []string `toml:"formats"`
	Detailed bool     `toml:"detailed"`
	PNGScale float64  `toml:"png_scale"`
}

const defaultPNGScale = 2.0

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Tree:       string(tree.KindBST),
		Duplicates: stack.DuplicateReject.String(),
		StatusTTL:  session.DefaultStatusTTL,
		Layout:     layout.DefaultOptions(),
		Render: RenderConfig{
			Types:    []string{vizScene},
			Formats:  []string{formatSVG},
			PNGScale: defaultPNGScale,
		},
	}
}

// configPath returns the default config file location
// (~/.config/treestack/config.toml, honoring XDG_CONFIG_HOME).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path. An empty path means the default
// location, where a missing file is not an error.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if cfg.Render.PNGScale == 0 {
		cfg.Render.PNGScale = defaultPNGScale
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enum fields and numeric ranges.
func (c Config) Validate() error {
	if _, err := tree.ParseKind(c.Tree); err != nil {
		return err
	}
	if _, err := stack.ParseDuplicatePolicy(c.Duplicates); err != nil {
		return err
	}
	if c.StatusTTL <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "status_ttl must be positive")
	}
	l := c.Layout
	if l.MinNodeWidth <= 0 || l.LevelHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.min_node_width and layout.level_height must be positive")
	}
	if l.HorizontalSpacing < 0 || l.LevelDecay < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout values must not be negative")
	}
	if l.MinLevelFactor < 0 || l.MinLevelFactor > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.min_level_factor must be within [0, 1]")
	}
	if err := validateTypes(c.Render.Types); err != nil {
		return err
	}
	if err := validateFormats(c.Render.Formats); err != nil {
		return err
	}
	if c.Render.PNGScale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.png_scale must not be negative")
	}
	return nil
}

// sessionOptions builds session options from the config, with a non-empty
// treeFlag overriding the configured kind.
func (c Config) sessionOptions(treeFlag string) ([]session.Option, error) {
	name := c.Tree
	if treeFlag != "" {
		name = treeFlag
	}
	kind, err := tree.ParseKind(name)
	if err != nil {
		return nil, err
	}
	policy, err := stack.ParseDuplicatePolicy(c.Duplicates)
	if err != nil {
		return nil, err
	}
	return []session.Option{
		session.WithKind(kind),
		session.WithDuplicatePolicy(policy),
		session.WithLayout(c.Layout),
		session.WithStatusTTL(c.StatusTTL),
	}, nil
}
