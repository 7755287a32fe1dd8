package config

import (
	"fmt"
	"strings"
	"time"

	"vending-machine/internal/core/domain"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Machine   MachineConfig   `mapstructure:"machine"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Operator  OperatorConfig  `mapstructure:"operator"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// DatabaseConfig configures the sales journal. The machine runs without it.
type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// RedisConfig configures the rate limit store. Without it requests are not limited.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// RateLimitConfig holds requests per minute for each endpoint group.
type RateLimitConfig struct {
	Panel         int64 `mapstructure:"panel"`
	OperatorLogin int64 `mapstructure:"operator_login"`
	Operator      int64 `mapstructure:"operator"`
}

// MetricsConfig controls the Prometheus endpoint at /metrics.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type MachineConfig struct {
	ID                     string       `mapstructure:"id"`
	RollbackOnInsufficient bool         `mapstructure:"rollback_on_insufficient"`
	Coins                  []CoinConfig `mapstructure:"coins"` // initial coin holder contents
}

type CoinConfig struct {
	Denomination string `mapstructure:"denomination"`
	Count        int    `mapstructure:"count"`
}

// CatalogConfig lists the shelves loaded at startup. Empty means the factory layout.
type CatalogConfig struct {
	Shelves []ShelfConfig `mapstructure:"shelves"`
}

type ShelfConfig struct {
	ID    int    `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Price string `mapstructure:"price"` // decimal, e.g. "1.20"
	Count int    `mapstructure:"count"`
}

type OperatorConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"` // Argon2id, see -hash-password
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: VEND_.
// Nested keys use underscore: VEND_MACHINE_ID, VEND_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "vending")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "8h")
	v.SetDefault("jwt.issuer", "vending-machine")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("rate_limit.panel", 120)
	v.SetDefault("rate_limit.operator_login", 10)
	v.SetDefault("rate_limit.operator", 60)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("machine.id", "vm-01")
	v.SetDefault("machine.rollback_on_insufficient", false)
	v.SetDefault("operator.username", "operator")
	v.SetDefault("operator.password_hash", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// VEND_MACHINE_ROLLBACK_ON_INSUFFICIENT -> machine.rollback_on_insufficient
	v.SetEnvPrefix("VEND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the machine cannot start with.
func (c *Config) Validate() error {
	if c.Machine.ID == "" {
		return fmt.Errorf("machine.id is required")
	}
	if c.Operator.PasswordHash != "" && c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required when operator login is enabled")
	}
	if _, err := c.Machine.InitialCoins(); err != nil {
		return err
	}
	if _, err := c.Catalog.ShelfList(); err != nil {
		return err
	}
	return nil
}

// InitialCoins converts the configured coin holder contents.
func (m MachineConfig) InitialCoins() (map[domain.Denomination]int, error) {
	out := make(map[domain.Denomination]int, len(m.Coins))
	for _, c := range m.Coins {
		d, err := domain.ParseDenomination(c.Denomination)
		if err != nil {
			return nil, fmt.Errorf("machine.coins: %w", err)
		}
		if c.Count < 0 {
			return nil, fmt.Errorf("machine.coins: negative count for %s", d)
		}
		out[d] += c.Count
	}
	return out, nil
}

// ShelfList converts the configured shelves. It returns nil when none are set.
func (c CatalogConfig) ShelfList() ([]domain.Shelf, error) {
	if len(c.Shelves) == 0 {
		return nil, nil
	}
	seen := make(map[int]bool, len(c.Shelves))
	out := make([]domain.Shelf, 0, len(c.Shelves))
	for _, s := range c.Shelves {
		if seen[s.ID] {
			return nil, fmt.Errorf("catalog.shelves: duplicate shelf %d", s.ID)
		}
		seen[s.ID] = true

		price, err := domain.ParseMoney(s.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog.shelves[%d]: %w", s.ID, err)
		}
		p := domain.Product{Name: s.Name, Price: price}
		if !p.IsSellable() {
			return nil, fmt.Errorf("catalog.shelves[%d]: product needs a name and a positive price", s.ID)
		}
		if s.Count < 0 {
			return nil, fmt.Errorf("catalog.shelves[%d]: negative count", s.ID)
		}
		out = append(out, domain.Shelf{ID: s.ID, Product: p, Count: s.Count})
	}
	return out, nil
}
