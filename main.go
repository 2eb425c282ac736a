package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/soocke/camwall/app"
	"github.com/soocke/camwall/config"
)

func main() {
	cfgPath := flag.String("config", "camwall.json", "path to the JSON config file")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error); overrides config")
	debugMode := flag.Bool("debug", false, "enable runtime debug logging")
	metricsAddr := flag.String("metrics", "", "listen address for /metrics and /status; overrides config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		NewLogger(slog.LevelInfo).Error("config load", "path", *cfgPath, "error", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *debugMode {
		cfg.Debug = true
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		NewLogger(slog.LevelInfo).Error("invalid config", "path", *cfgPath, "error", err)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	if cfg.Debug && *logLevel == "" {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	c, err := app.BuildContainer(cfg, logger)
	if err != nil {
		logger.Error("startup", "config", *cfgPath, "error", err)
		os.Exit(1)
	}
	logger.Info("camwall starting", "cameras", c.Registry.Len(), "server_url", cfg.ServerURL)

	application := app.NewApp("Camera Wall", c)
	application.Start()
}
