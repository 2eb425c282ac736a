package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/soocke/camwall/domain/wall"
)

// CameraConfig describes one camera on the wall.
type CameraConfig struct {
	Name string `json:"name"`
	// StreamURL is the MJPEG feed. Empty means {server_url}/video/{index}.
	StreamURL string `json:"stream_url,omitempty"`
}

// Config holds runtime configuration for the wall viewer.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug    bool   `json:"debug"`
	LogLevel string `json:"log_level"`
	DarkMode bool   `json:"dark_mode"`

	// Camera server
	ServerURL            string         `json:"server_url"`
	Cameras              []CameraConfig `json:"cameras"`
	SubmitTimeoutSeconds int            `json:"submit_timeout_seconds"`

	// Layout; Rows/Cols of 0 derive a square grid from the camera count.
	Rows         int `json:"rows"`
	Cols         int `json:"cols"`
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
	TileGap      int `json:"tile_gap"`
	RefreshMs    int `json:"refresh_ms"`

	MetricsAddr string `json:"metrics_addr"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                false,
		LogLevel:             "info",
		ServerURL:            "http://127.0.0.1:5000",
		SubmitTimeoutSeconds: 10,
		WindowWidth:          1280,
		WindowHeight:         720,
		TileGap:              4,
		RefreshMs:            100,
	}
}

// Validate clamps numeric values to safe ranges and normalizes ServerURL.
// It reports an unparsable log level or a server URL that is not an
// absolute http(s) URL; those are left as given.
func (c *Config) Validate() error {
	var errs []error
	c.ServerURL = strings.TrimRight(strings.TrimSpace(c.ServerURL), "/")
	if c.ServerURL == "" {
		c.ServerURL = DefaultConfig().ServerURL
	}
	if err := checkServerURL(c.ServerURL); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("log_level %q: %w", c.LogLevel, err))
	}
	if c.SubmitTimeoutSeconds <= 0 {
		c.SubmitTimeoutSeconds = 10
	}
	if c.WindowWidth < 160 {
		c.WindowWidth = 1280
	}
	if c.WindowHeight < 120 {
		c.WindowHeight = 720
	}
	if c.TileGap < 0 {
		c.TileGap = 0
	}
	if c.RefreshMs < 15 {
		c.RefreshMs = 100
	}
	if c.Rows < 0 {
		c.Rows = 0
	}
	if c.Cols < 0 {
		c.Cols = 0
	}
	return errors.Join(errs...)
}

func checkServerURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("server_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server_url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("server_url %q: missing host", raw)
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return l, nil
}

// SubmitTimeout is the per-request timeout for ROI submissions.
func (c *Config) SubmitTimeout() time.Duration {
	return time.Duration(c.SubmitTimeoutSeconds) * time.Second
}

// RefreshInterval is the render tick interval.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshMs) * time.Millisecond
}

// Grid returns rows and columns for the wall, deriving missing values.
func (c *Config) Grid() (rows, cols int) {
	n := wall.GridSize(len(c.Cameras))
	rows, cols = c.Rows, c.Cols
	if rows == 0 {
		rows = n
	}
	if cols == 0 {
		cols = n
	}
	// grow rows so every camera has a cell
	for rows*cols < len(c.Cameras) {
		rows++
	}
	return rows, cols
}

// Tiles converts the camera list into wall tiles, filling default stream URLs.
func (c *Config) Tiles() []wall.Tile {
	tiles := make([]wall.Tile, len(c.Cameras))
	for i, cam := range c.Cameras {
		url := cam.StreamURL
		if url == "" {
			url = fmt.Sprintf("%s/video/%d", c.ServerURL, i)
		}
		tiles[i] = wall.Tile{Index: i, Name: cam.Name, StreamURL: url}
	}
	return tiles
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
// A file that decodes but fails Validate is returned together with that error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
