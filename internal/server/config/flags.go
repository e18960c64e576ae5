package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/userserver/internal/flagx"
	"github.com/dmitrijs2005/userserver/internal/logging"
)

// ErrInvalidConfig marks a configuration that parsed but cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string        gRPC bind address (e.g., ":50051")
//	-d string        PostgreSQL DSN
//	-t int           access token validity, minutes
//	-r int           refresh token validity, minutes
//	-l string        log backend: slog or zap
//	-strict-refresh  also verify refresh_token metadata on gated calls
//
// Only these flags are picked out of os.Args; the rest are left to other
// flag sets (for example -c).
func parseFlags(config *Config) error {
	args := flagx.FilterArgsWithBools(os.Args[1:],
		[]string{"-a", "-d", "-t", "-r", "-l"},
		[]string{"-strict-refresh", "--strict-refresh"},
	)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend (slog|zap)")
	fs.BoolVar(&config.GateCheckRefreshToken, "strict-refresh", config.GateCheckRefreshToken, "verify refresh_token metadata on gated calls")

	accessTTL := fs.Int("t", int(config.AccessTokenTTL.Minutes()), "access token validity (in minutes)")
	refreshTTL := fs.Int("r", int(config.RefreshTokenTTL.Minutes()), "refresh token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	// minute flags only override when given, so sub-minute env values survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenTTL = time.Duration(*accessTTL) * time.Minute
		case "r":
			config.RefreshTokenTTL = time.Duration(*refreshTTL) * time.Minute
		}
	})

	return nil
}

func (c *Config) validate() error {
	switch {
	case c.EndpointAddrGRPC == "":
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	case c.DatabaseDSN == "":
		return fmt.Errorf("%w: empty database DSN", ErrInvalidConfig)
	case c.AccessTokenTTL < time.Second:
		return fmt.Errorf("%w: access token ttl %s", ErrInvalidConfig, c.AccessTokenTTL)
	case c.RefreshTokenTTL < time.Second:
		return fmt.Errorf("%w: refresh token ttl %s", ErrInvalidConfig, c.RefreshTokenTTL)
	case c.LogBackend != logging.BackendSlog && c.LogBackend != logging.BackendZap:
		return fmt.Errorf("%w: unknown log backend %q", ErrInvalidConfig, c.LogBackend)
	case c.DBMaxOpenConns < 0:
		return fmt.Errorf("%w: negative pool size", ErrInvalidConfig)
	}
	return nil
}
