package postgres

import (
	"testing"
	"time"

	"vending-machine/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoolConfig(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:            "db.local",
		Port:            5433,
		User:            "vend",
		Password:        "secret",
		DBName:          "journal",
		SSLMode:         "disable",
		MaxConns:        6,
		MinConns:        2,
		ConnMaxLifetime: 10 * time.Minute,
	}

	poolCfg, err := parsePoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.local", poolCfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), poolCfg.ConnConfig.Port)
	assert.Equal(t, "journal", poolCfg.ConnConfig.Database)
	assert.Equal(t, int32(6), poolCfg.MaxConns)
	assert.Equal(t, int32(2), poolCfg.MinConns)
	assert.Equal(t, 10*time.Minute, poolCfg.MaxConnLifetime)
}

func TestParsePoolConfig_KeepsPgxDefaults(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "localhost", Port: 5432, User: "u", DBName: "d", SSLMode: "disable"}

	poolCfg, err := parsePoolConfig(cfg)
	require.NoError(t, err)

	assert.Greater(t, poolCfg.MaxConns, int32(0))
	assert.Greater(t, poolCfg.MaxConnLifetime, time.Duration(0))
}

func TestParsePoolConfig_BadSSLMode(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "localhost", Port: 5432, User: "u", DBName: "d", SSLMode: "sometimes"}

	_, err := parsePoolConfig(cfg)
	assert.Error(t, err)
}
