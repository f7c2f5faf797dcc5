package logging

import "os"

// Env names the environment variables that override a Config.
type Env struct {
	Level  string
	Format string
}

type Config struct {
	Level  Level  `toml:"level" json:"level"`
	Format Format `toml:"format" json:"format"`
}

// Finalize fills defaults, applies environment overrides, then the
// non-zero fields of overlay, and validates. overlay may be nil.
func (c *Config) Finalize(env *Env, overlay *Config) error {
	c.loadDefaults()
	c.loadEnv(env)
	if overlay != nil {
		c.Merge(overlay)
	}
	return c.validate()
}

// Merge copies the non-zero fields of overlay into c.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

func (c *Config) loadDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
}

func (c *Config) loadEnv(env *Env) {
	if env == nil {
		return
	}
	if v := os.Getenv(env.Level); v != "" {
		c.Level = Level(v)
	}
	if v := os.Getenv(env.Format); v != "" {
		c.Format = Format(v)
	}
}

func (c *Config) validate() error {
	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}
