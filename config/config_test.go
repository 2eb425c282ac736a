package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.ServerURL != DefaultConfig().ServerURL {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.json")
	cfg := DefaultConfig()
	cfg.ServerURL = "http://wall.local:5000/"
	cfg.Cameras = []CameraConfig{{Name: "gate"}, {Name: "yard", StreamURL: "http://cam/yard.mjpg"}}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ServerURL != "http://wall.local:5000" {
		t.Fatalf("trailing slash not trimmed: %q", got.ServerURL)
	}
	if diff := cmp.Diff(cfg.Cameras, got.Cameras); diff != "" {
		t.Fatalf("cameras mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_Clamps(t *testing.T) {
	cfg := &Config{LogLevel: "warn", Rows: -1, Cols: -3, TileGap: -2, RefreshMs: 1, WindowWidth: 10}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("clamping alone should not fail: %v", err)
	}
	if cfg.Rows != 0 || cfg.Cols != 0 || cfg.TileGap != 0 {
		t.Fatalf("not clamped: %+v", cfg)
	}
	if cfg.ServerURL != DefaultConfig().ServerURL {
		t.Fatalf("empty server_url not defaulted: %q", cfg.ServerURL)
	}
	if cfg.RefreshInterval() != 100*time.Millisecond || cfg.SubmitTimeout() != 10*time.Second {
		t.Fatalf("durations: %v %v", cfg.RefreshInterval(), cfg.SubmitTimeout())
	}
	if cfg.WindowWidth != 1280 || cfg.WindowHeight != 720 {
		t.Fatalf("window not defaulted: %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"scheme", func(c *Config) { c.ServerURL = "ftp://cams.local" }, "scheme"},
		{"relative", func(c *Config) { c.ServerURL = "cams.local:5000" }, "server_url"},
		{"no host", func(c *Config) { c.ServerURL = "http://" }, "missing host"},
		{"unparsable", func(c *Config) { c.ServerURL = "http://[::1" }, "server_url"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoad_InvalidValuesReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.json")
	if err := os.WriteFile(path, []byte(`{"log_level":"loud","server_url":"ftp://x"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "log_level") || !strings.Contains(err.Error(), "server_url") {
		t.Fatalf("expected both problems reported, got %v", err)
	}
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("save defaults: %v", err)
	}
	bad := DefaultConfig()
	bad.LogLevel = "loud"
	if err := bad.Save(path); err == nil {
		t.Fatalf("save should refuse an invalid config")
	}
}

func TestLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	if l, err := cfg.Level(); err != nil || l != slog.LevelDebug {
		t.Fatalf("level: %v %v", l, err)
	}
}

func TestGridAndTiles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cameras = []CameraConfig{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}}
	if r, c := cfg.Grid(); r != 3 || c != 3 {
		t.Fatalf("auto grid %dx%d", r, c)
	}
	cfg.Rows, cfg.Cols = 1, 2
	if r, c := cfg.Grid(); r != 3 || c != 2 {
		t.Fatalf("grown grid %dx%d", r, c)
	}
	tiles := cfg.Tiles()
	if tiles[4].Index != 4 || tiles[4].StreamURL != cfg.ServerURL+"/video/4" {
		t.Fatalf("tile defaults: %+v", tiles[4])
	}
}
