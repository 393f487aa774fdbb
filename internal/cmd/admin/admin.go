// Package admin parses dashboard flags and launches the dashboard.
package admin

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/conectareparo/internal/platform/cmd"
	"github.com/louisbranch/conectareparo/internal/services/admin"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr   string        `env:"CONECTA_REPARO_ADMIN_ADDR" envDefault:":8082"`
	APIURL     string        `env:"CONECTA_REPARO_API_URL" envDefault:"http://localhost:8080"`
	APITimeout time.Duration `env:"CONECTA_REPARO_API_TIMEOUT" envDefault:"5s"`
	DBPath     string        `env:"CONECTA_REPARO_ADMIN_DB_PATH" envDefault:"data/admin.db"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "maintenance API base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "timeout for each maintenance API request")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "activity log database path (empty disables it)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the admin dashboard.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAdmin, func(ctx context.Context) error {
		server, err := admin.NewServer(admin.Config{
			HTTPAddr:   cfg.HTTPAddr,
			APIURL:     cfg.APIURL,
			APITimeout: cfg.APITimeout,
			DBPath:     cfg.DBPath,
		})
		if err != nil {
			return fmt.Errorf("init admin server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve admin: %w", err)
		}
		return nil
	})
}
