package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, store backend,
//   upstream catalog URL), security settings
// - default: Values common across all environments (timeouts, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Catalog CatalogConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StoreConfig selects the booking document store backend. "memory" keeps
// everything in process, "redis" and "postgres" persist across restarts.
type StoreConfig struct {
	Driver    string `envconfig:"STORE_DRIVER" default:"memory"`
	RedisAddr string `envconfig:"STORE_REDIS_ADDR" default:"localhost:6379"`
	RedisDB   int    `envconfig:"STORE_REDIS_DB" default:"0"`

	PGHost     string `envconfig:"STORE_PG_HOST" default:"localhost"`
	PGPort     string `envconfig:"STORE_PG_PORT" default:"5432"`
	PGUser     string `envconfig:"STORE_PG_USER" default:"holidaze"`
	PGPassword string `envconfig:"STORE_PG_PASSWORD" default:""`
	PGDBName   string `envconfig:"STORE_PG_DBNAME" default:"holidaze"`
	PGSSLMode  string `envconfig:"STORE_PG_SSL_MODE" default:"disable"`
}

type CatalogConfig struct {
	BaseURL string        `envconfig:"CATALOG_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

func (c *StoreConfig) BuildPostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDBName, c.PGSSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		Catalog: CatalogConfig{
			BaseURL: "http://localhost:9999",
			Timeout: 2 * time.Second,
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
	}
}
