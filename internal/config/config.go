package config

import (
	"net"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"

	// Environment variables
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port int `envconfig:"PORT" default:"8080"`

	// DB
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBDatabase string `envconfig:"DB_DATABASE" default:"astro"`
	DBUsername string `envconfig:"DB_USERNAME" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBSchema   string `envconfig:"DB_SCHEMA" default:"public"`

	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"migrations"`
	AutoMigrate    bool   `envconfig:"AUTO_MIGRATE" default:"true"`

	// NASA open APIs
	NASAAPIURL string `envconfig:"NASA_API_URL" default:"https://api.nasa.gov"`
	NASAAPIKey string `envconfig:"NASA_API_KEY" default:"DEMO_KEY"`

	// BehindProxy trusts X-Forwarded-For/X-Real-IP for the client address.
	// Leave it off unless a proxy in front of the API overwrites those headers.
	BehindProxy bool `envconfig:"BEHIND_PROXY" default:"false"`

	RateLimitRPS      float64       `envconfig:"RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst    int           `envconfig:"RATE_LIMIT_BURST" default:"10"`
	RateLimitIdle     time.Duration `envconfig:"RATE_LIMIT_IDLE" default:"3m"`
	CountdownInterval time.Duration `envconfig:"COUNTDOWN_INTERVAL" default:"60s"`
}

// Load reads the process environment, after .env has been autoloaded.
func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}

// DatabaseURL is the postgres connection string shared by the driver and the migrator.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUsername, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBDatabase,
		RawQuery: url.Values{"sslmode": {"disable"}, "search_path": {c.DBSchema}}.Encode(),
	}
	return u.String()
}
