package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	UI       UIConfig       `toml:"ui"`
	Carousel CarouselConfig `toml:"carousel"`
	Feed     FeedConfig     `toml:"feed"`
	Log      LogConfig      `toml:"log"`
	Keybinds KeybindConfig  `toml:"keybinds"`
}

// UIConfig is the window setup. OpenLinks opens a tapped card's link in the
// default browser.
type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	OpenLinks  bool `toml:"open_links"`
}

type CarouselConfig struct {
	// Breakpoint is the window width at which two cards share a page.
	Breakpoint      float64 `toml:"breakpoint"`
	SpringFrequency float64 `toml:"spring_frequency"`
	SpringDamping   float64 `toml:"spring_damping"`
	CardHeight      float64 `toml:"card_height"`
}

type FeedConfig struct {
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type KeybindConfig struct {
	Prev         string `toml:"prev"`
	Next         string `toml:"next"`
	First        string `toml:"first"`
	Last         string `toml:"last"`
	NextCarousel string `toml:"next_carousel"`
	Fullscreen   string `toml:"fullscreen"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      960,
			Height:     720,
			OpenLinks:  true,
		},
		Carousel: CarouselConfig{
			Breakpoint:      640,
			SpringFrequency: 10,
			SpringDamping:   1,
			CardHeight:      300,
		},
		Feed: FeedConfig{
			Watch: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Keybinds: KeybindConfig{
			Prev:         "Left",
			Next:         "Right",
			First:        "Home",
			Last:         "End",
			NextCarousel: "Tab",
			Fullscreen:   "F",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		errs = append(errs, fmt.Errorf("ui: window size %dx%d must be positive", c.UI.Width, c.UI.Height))
	}
	if c.Carousel.Breakpoint <= 0 {
		errs = append(errs, fmt.Errorf("carousel: breakpoint %v must be positive", c.Carousel.Breakpoint))
	}
	if c.Carousel.SpringFrequency <= 0 {
		errs = append(errs, fmt.Errorf("carousel: spring_frequency %v must be positive", c.Carousel.SpringFrequency))
	}
	if c.Carousel.SpringDamping <= 0 {
		errs = append(errs, fmt.Errorf("carousel: spring_damping %v must be positive", c.Carousel.SpringDamping))
	}
	if c.Carousel.CardHeight < 120 {
		errs = append(errs, fmt.Errorf("carousel: card_height %v is below 120", c.Carousel.CardHeight))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	return errors.Join(errs...)
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown level %q", name)
	}
	return lvl, nil
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "chatdeck"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default path. A missing file yields the
// defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path over the defaults. A missing file yields
// the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		slog.Warn("unknown config keys ignored", "path", path, "keys", fmt.Sprint(undecoded))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
