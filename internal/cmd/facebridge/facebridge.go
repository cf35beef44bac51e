// Package facebridge parses bridge flags and launches the bridge service.
package facebridge

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	entrypoint "github.com/louisbranch/facebridge/internal/platform/cmd"
	server "github.com/louisbranch/facebridge/internal/services/bridge/app"
	"github.com/louisbranch/facebridge/internal/services/bridge/locator"
)

// Config holds bridge command configuration.
type Config struct {
	SocketDir     string        `env:"SOCKET_DIR"`
	Workers       int           `env:"WORKERS" envDefault:"4"`
	Locator       string        `env:"LOCATOR" envDefault:"poll"`
	RetryInterval time.Duration `env:"RETRY_INTERVAL" envDefault:"1s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.SocketDir, "socket-dir", cfg.SocketDir, "Directory holding service sockets")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Goroutines serving inbound calls per server")
	fs.StringVar(&cfg.Locator, "locator", cfg.Locator, "Backend resolution policy (poll or wait)")
	fs.DurationVar(&cfg.RetryInterval, "retry-interval", cfg.RetryInterval, "Delay between backend resolution attempts")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Workers <= 0 {
		return Config{}, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	return cfg, nil
}

// Run starts the face bridge and serves until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	loc, err := locator.New(cfg.Locator, locator.Options{
		SocketDir: cfg.SocketDir,
		Interval:  cfg.RetryInterval,
		Logf:      log.Printf,
	})
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBridge, func(ctx context.Context) error {
		return server.Run(ctx, server.Options{
			SocketDir: cfg.SocketDir,
			Workers:   cfg.Workers,
			Locator:   loc,
			Logf:      log.Printf,
		})
	})
}
