package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userserver/internal/flagx"
	"github.com/dmitrijs2005/userserver/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "1h" or
// integer nanoseconds. Secrets are deliberately absent.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	DatabaseDSN           string         `json:"database_dsn"`
	DBMaxOpenConns        int            `json:"db_max_open_conns"`
	AccessTokenTTL        timex.Duration `json:"access_token_ttl"`
	RefreshTokenTTL       timex.Duration `json:"refresh_token_ttl"`
	LogBackend            string         `json:"log_backend"`
	GateCheckRefreshToken *bool          `json:"gate_check_refresh_token"`
}

// parseJson loads the file named by -c/-config, if any, and copies every
// field present in it into config.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("json config: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("json config %s: %w", jsonConfigFile, err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.DBMaxOpenConns != 0 {
		config.DBMaxOpenConns = c.DBMaxOpenConns
	}
	if c.AccessTokenTTL.Duration != 0 {
		config.AccessTokenTTL = c.AccessTokenTTL.Duration
	}
	if c.RefreshTokenTTL.Duration != 0 {
		config.RefreshTokenTTL = c.RefreshTokenTTL.Duration
	}
	if c.LogBackend != "" {
		config.LogBackend = c.LogBackend
	}
	if c.GateCheckRefreshToken != nil {
		config.GateCheckRefreshToken = *c.GateCheckRefreshToken
	}

	return nil
}
