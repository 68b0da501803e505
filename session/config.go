package session

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/stackuml-dev/stackuml/plantuml"
)

// Config is the small tuning surface. A TOML file can override any field;
// unset fields keep their defaults.
type Config struct {
	// MaxLineWidth bounds activity label lines in the diagram.
	MaxLineWidth int `toml:"max_line_width"`
	// MatchColumn makes frame equivalence also require matching column
	// numbers. Off by default: most debuggers report no column, and the
	// tolerant policy merges more prefixes.
	MatchColumn bool `toml:"match_column"`
	// StackDepth caps how many frames a single trace fetch returns.
	StackDepth int `toml:"stack_depth"`
}

const defaultStackDepth = 64

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		MaxLineWidth: plantuml.DefaultMaxWidth,
		StackDepth:   defaultStackDepth,
	}
}

// LoadConfig reads a TOML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if _, err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg.clamped(), nil
}

func (c Config) clamped() Config {
	if c.MaxLineWidth < 1 {
		c.MaxLineWidth = 1
	}
	if c.StackDepth < 1 {
		c.StackDepth = defaultStackDepth
	}
	return c
}
