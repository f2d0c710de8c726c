package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/depeter/cyclemenu/internal/menu"
)

type Config struct {
	Menu     MenuConfig    `toml:"menu"`
	UI       UIConfig      `toml:"ui"`
	State    StateConfig   `toml:"state"`
	Log      LogConfig     `toml:"log"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type MenuConfig struct {
	Corner          string `toml:"corner"`
	ScalingType     string `toml:"scaling_type"`
	ScrollType      string `toml:"scroll_type"`
	AutoMinRadius   int    `toml:"auto_min_radius"`
	AutoMaxRadius   int    `toml:"auto_max_radius"`
	FixedRadius     int    `toml:"fixed_radius"`
	CollapsedRadius int    `toml:"collapsed_radius"`
	ShadowSize      int    `toml:"shadow_size"`
	Background      string `toml:"background"`
	Ripple          string `toml:"ripple"`
	ItemsTint       string `toml:"items_tint"`
	CornerIcon      string `toml:"corner_icon"`
	ItemCount       int    `toml:"item_count"`
	ItemSize        int    `toml:"item_size"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Debug      bool `toml:"debug"`
}

type StateConfig struct {
	DBPath string `toml:"db_path"` // Empty uses the XDG data dir
}

type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

type KeybindConfig struct {
	Toggle     string `toml:"toggle"`
	Corner     string `toml:"corner"`
	ScrollMode string `toml:"scroll_mode"`
	Scaling    string `toml:"scaling"`
	ScrollBack string `toml:"scroll_back"`
	ScrollNext string `toml:"scroll_next"`
	Debug      string `toml:"debug"`
	Fullscreen string `toml:"fullscreen"`
	Quit       string `toml:"quit"`
}

func DefaultConfig() *Config {
	return &Config{
		Menu: MenuConfig{
			Corner:          "left_top",
			ScalingType:     "auto",
			ScrollType:      "endless",
			AutoMinRadius:   0,
			AutoMaxRadius:   -1,
			FixedRadius:     360,
			CollapsedRadius: 72,
			ShadowSize:      24,
			Background:      "#1E88E5",
			Ripple:          "#FFFFFF66",
			ItemsTint:       "",
			CornerIcon:      "plus",
			ItemCount:       12,
			ItemSize:        56,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     720,
		},
		Log: LogConfig{
			Level: "info",
		},
		Keybinds: KeybindConfig{
			Toggle:     "Space",
			Corner:     "C",
			ScrollMode: "E",
			Scaling:    "S",
			ScrollBack: "Left",
			ScrollNext: "Right",
			Debug:      "D",
			Fullscreen: "F",
			Quit:       "Escape",
		},
	}
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
	return filepath.Join(configHome, "cyclemenu"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the user config, falling back to defaults when there is none.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Menu.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Validate checks every enum and color string.
func (m MenuConfig) Validate() error {
	_, err := m.Settings()
	return err
}

// Settings converts the menu section into widget settings.
func (m MenuConfig) Settings() (menu.Settings, error) {
	s := menu.DefaultSettings()

	var err error
	if s.Corner, err = menu.ParseCorner(m.Corner); err != nil {
		return s, err
	}
	if s.ScalingType, err = menu.ParseScalingType(m.ScalingType); err != nil {
		return s, err
	}
	if s.ScrollType, err = menu.ParseScrollMode(m.ScrollType); err != nil {
		return s, err
	}
	if s.BackgroundColor, err = ParseColor(m.Background); err != nil {
		return s, fmt.Errorf("background: %w", err)
	}
	if s.RippleColor, err = ParseColor(m.Ripple); err != nil {
		return s, fmt.Errorf("ripple: %w", err)
	}
	if m.ItemsTint != "" {
		tint, err := ParseColor(m.ItemsTint)
		if err != nil {
			return s, fmt.Errorf("items_tint: %w", err)
		}
		s.ItemsTint = tint
	}

	s.AutoMinRadius = m.AutoMinRadius
	s.AutoMaxRadius = m.AutoMaxRadius
	s.FixedRadius = m.FixedRadius
	s.CollapsedRadius = m.CollapsedRadius
	s.ShadowSize = m.ShadowSize
	s.CornerIcon = m.CornerIcon
	return s, s.Validate()
}

// ParseColor reads "#RRGGBB" or "#RRGGBBAA".
func ParseColor(hex string) (color.RGBA, error) {
	if (len(hex) != 7 && len(hex) != 9) || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q", hex)
	}
	for _, r := range hex[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return color.RGBA{}, fmt.Errorf("invalid color %q", hex)
		}
	}

	alpha := uint64(0xff)
	if len(hex) == 9 {
		alpha, _ = strconv.ParseUint(hex[7:], 16, 8)
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: uint8(alpha)}).(color.RGBA), nil
}
