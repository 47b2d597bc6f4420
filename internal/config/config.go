// Package config defines the ParisGreen configuration format and helpers for
// loading or saving it to disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BoyleSeo/paris-green/internal/param"
)

const (
	// AppID is the stable application identifier used for config storage.
	AppID = "parisgreen"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "ParisGreen"
	// AppConfigName is the JSON file stored on disk.
	AppConfigName = "config.json"

	// DefaultWidth is the preferred window width when no persisted value exists.
	DefaultWidth = 420
	// DefaultHeight fits the whole widget column without scrolling.
	DefaultHeight = 640
	// MinWindowWidth keeps the widest row, the pad beside its readout, usable.
	MinWindowWidth = 360

	// DefaultOSCHost is the loopback target used until one is configured.
	DefaultOSCHost = "127.0.0.1"
	// DefaultOSCPort is the conventional local OSC receiver port.
	DefaultOSCPort = 9000
	// DefaultOSCPrefix namespaces every outgoing message address.
	DefaultOSCPrefix = "/parisgreen"
)

// ParamState persists the panel's widget positions between sessions. Mix is
// the stock slider's value; the rest are normals, all in 0..1.
type ParamState struct {
	Mix   float64 `json:"mix"`
	Steps float64 `json:"steps"`
	Gain  float64 `json:"gain"`
	Freq  float64 `json:"freq"`
	PadX  float64 `json:"padX"`
	PadY  float64 `json:"padY"`
}

// OSCConfig holds the outgoing OSC target.
type OSCConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
	Prefix  string `json:"prefix"`
}

// Config aggregates every user-facing preference persisted between sessions.
type Config struct {
	WindowW        int        `json:"windowW"`
	WindowH        int        `json:"windowH"`
	RememberValues bool       `json:"rememberValues"`
	Values         ParamState `json:"values"`
	OSC            OSCConfig  `json:"osc"`
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to config.json.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from disk, applying defaults or clamping out-of-band
// values when necessary.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := newDefaultConfig()
			// Try saving an initial config, but still return defaults even if it fails.
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save persists the configuration to disk, creating directories as needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// AppID returns the stable identifier used by the GUI framework.
func (c *Config) AppID() string { return AppID }

// DefaultParamState mirrors a freshly constructed panel: stepped slider on 5,
// gain at 0 dB, knob at 1 kHz, pad centered, stock slider at rest.
func DefaultParamState() ParamState {
	return ParamState{
		Mix:   0,
		Steps: float64(param.NewIntRange(0, 10).MapToNormal(5)),
		Gain:  float64(param.DefaultLogDBRange().MapToNormal(0)),
		Freq:  float64(param.DefaultFreqRange().MapToNormal(1000)),
		PadX:  float64(param.CenterNormal),
		PadY:  float64(param.CenterNormal),
	}
}

// newDefaultConfig builds an in-memory config populated with safe defaults.
func newDefaultConfig() *Config {
	cfg := &Config{
		WindowW:        DefaultWidth,
		WindowH:        DefaultHeight,
		RememberValues: true,
		Values:         DefaultParamState(),
		OSC: OSCConfig{
			Enabled: false,
			Host:    DefaultOSCHost,
			Port:    DefaultOSCPort,
			Prefix:  DefaultOSCPrefix,
		},
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

// applyRuntimeDefaults normalizes config values after a load or when defaults
// are constructed, ensuring the UI always receives sane inputs.
func (c *Config) applyRuntimeDefaults() {
	if c.WindowW == 0 {
		c.WindowW = DefaultWidth
	}
	if c.WindowW < MinWindowWidth {
		c.WindowW = MinWindowWidth
	}
	if c.WindowH == 0 {
		c.WindowH = DefaultHeight
	}

	c.Values.Mix = clampUnit(c.Values.Mix)
	c.Values.Steps = clampUnit(c.Values.Steps)
	c.Values.Gain = clampUnit(c.Values.Gain)
	c.Values.Freq = clampUnit(c.Values.Freq)
	c.Values.PadX = clampUnit(c.Values.PadX)
	c.Values.PadY = clampUnit(c.Values.PadY)

	if strings.TrimSpace(c.OSC.Host) == "" {
		c.OSC.Host = DefaultOSCHost
	}
	if c.OSC.Port <= 0 || c.OSC.Port > 65535 {
		c.OSC.Port = DefaultOSCPort
	}
	c.OSC.Prefix = NormalizePrefix(c.OSC.Prefix)
}

// clampUnit constrains a stored position to the normalized interval, mapping
// NaN to 0 like the rest of the panel does.
func clampUnit(v float64) float64 {
	return float64(param.ClampNormal(v))
}

// NormalizePrefix shapes a user-supplied address prefix into the "/name" form
// the OSC sender expects, falling back to the default when nothing is left.
func NormalizePrefix(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if p == "" {
		return DefaultOSCPrefix
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
