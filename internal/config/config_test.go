package config

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadDefaultConfig(t *testing.T) {
	overrideConfigEnv(t, t.TempDir())

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	_ = os.Remove(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.WindowW != DefaultWidth {
		t.Errorf("WindowW = %d, want %d", cfg.WindowW, DefaultWidth)
	}
	if cfg.WindowH != DefaultHeight {
		t.Errorf("WindowH = %d, want %d", cfg.WindowH, DefaultHeight)
	}
	if !cfg.RememberValues {
		t.Error("RememberValues should default to true")
	}
	if cfg.OSC.Enabled {
		t.Error("OSC should default to disabled")
	}
	if cfg.OSC.Host != DefaultOSCHost || cfg.OSC.Port != DefaultOSCPort {
		t.Errorf("OSC target = %s:%d, want %s:%d",
			cfg.OSC.Host, cfg.OSC.Port, DefaultOSCHost, DefaultOSCPort)
	}
	if cfg.OSC.Prefix != DefaultOSCPrefix {
		t.Errorf("OSC prefix = %q, want %q", cfg.OSC.Prefix, DefaultOSCPrefix)
	}
	if cfg.Values.Steps != 0.5 || cfg.Values.Gain != 0.5 {
		t.Errorf("default steps/gain = %v/%v, want 0.5/0.5", cfg.Values.Steps, cfg.Values.Gain)
	}
	if want := math.Log2(50) / 10; math.Abs(cfg.Values.Freq-want) > 1e-12 {
		t.Errorf("default freq normal = %v, want %v (1 kHz)", cfg.Values.Freq, want)
	}
	if cfg.Values.PadX != 0.5 || cfg.Values.PadY != 0.5 {
		t.Errorf("default pad = (%v, %v), want centered", cfg.Values.PadX, cfg.Values.PadY)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, got error: %v", path, err)
	}
}

func TestLoadClampsStoredValues(t *testing.T) {
	overrideConfigEnv(t, t.TempDir())

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	raw := `{
  "windowW": 100,
  "windowH": 640,
  "rememberValues": true,
  "values": {"mix": 2, "steps": 7, "gain": 0.5, "freq": 0.6, "padX": 0.5, "padY": -3},
  "osc": {"enabled": true, "host": "  ", "port": -1, "prefix": "synth/"}
}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.WindowW != MinWindowWidth {
		t.Errorf("WindowW = %d, want clamped to %d", cfg.WindowW, MinWindowWidth)
	}
	if cfg.Values.Mix != 1 || cfg.Values.Steps != 1 || cfg.Values.PadY != 0 {
		t.Errorf("values not clamped: mix=%v steps=%v padY=%v",
			cfg.Values.Mix, cfg.Values.Steps, cfg.Values.PadY)
	}
	if !cfg.OSC.Enabled {
		t.Error("enabled flag must survive the load")
	}
	if cfg.OSC.Host != DefaultOSCHost {
		t.Errorf("blank host = %q, want %q", cfg.OSC.Host, DefaultOSCHost)
	}
	if cfg.OSC.Port != DefaultOSCPort {
		t.Errorf("invalid port = %d, want %d", cfg.OSC.Port, DefaultOSCPort)
	}
	if cfg.OSC.Prefix != "/synth" {
		t.Errorf("prefix = %q, want %q", cfg.OSC.Prefix, "/synth")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	overrideConfigEnv(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	cfg.WindowW = 500
	cfg.RememberValues = false
	cfg.Values.Mix = 0.55
	cfg.Values.Steps = 0.3
	cfg.OSC.Enabled = true
	cfg.OSC.Host = "192.168.1.20"
	cfg.OSC.Port = 8010
	cfg.OSC.Prefix = "/rig"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("reload returned error: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("reloaded config = %+v, want %+v", got, cfg)
	}
}

func TestNormalizePrefix(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"/parisgreen", "/parisgreen"},
		{"synth", "/synth"},
		{" /synth/ ", "/synth"},
		{"///", DefaultOSCPrefix},
		{"", DefaultOSCPrefix},
	}
	for _, tc := range cases {
		if got := NormalizePrefix(tc.in); got != tc.want {
			t.Errorf("NormalizePrefix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func overrideConfigEnv(t *testing.T, tempDir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", tempDir)
		t.Setenv("LOCALAPPDATA", tempDir)
		t.Setenv("USERPROFILE", tempDir)
		return
	}
	xdg := filepath.Join(tempDir, "xdg")
	if err := os.MkdirAll(xdg, 0o755); err != nil {
		t.Fatalf("mkdir xdg: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", tempDir)
}
