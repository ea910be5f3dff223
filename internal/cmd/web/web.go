// Package web parses docs site flags and launches the HTTP server.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/clidocs/internal/platform/cmd"
	"github.com/louisbranch/clidocs/internal/platform/logging"
	"github.com/louisbranch/clidocs/internal/services/web"
	"go.uber.org/zap"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr  string `env:"WEB_HTTP_ADDR"   envDefault:"localhost:8080"`
	EnableH2C bool   `env:"WEB_ENABLE_H2C"  envDefault:"false"`
	SiteName  string `env:"SITE_NAME"       envDefault:"Tern Docs"`
	LogLevel  string `env:"LOG_LEVEL"       envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"      envDefault:"json"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.BoolVar(&cfg.EnableH2C, "h2c", cfg.EnableH2C, "Serve cleartext HTTP/2")
	fs.StringVar(&cfg.SiteName, "site-name", cfg.SiteName, "Site name shown in page titles")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: json or console")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the docs site and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Config{
		Service: entrypoint.ServiceWeb,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:  cfg.HTTPAddr,
			EnableH2C: cfg.EnableH2C,
			SiteName:  cfg.SiteName,
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		logger.Info("starting docs site", zap.String("addr", server.Addr()), zap.Bool("h2c", cfg.EnableH2C))
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
