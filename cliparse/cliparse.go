package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Supported database types
const (
	DatabaseLibSQL   = "libsql"
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// DefaultOrigins are the sites allowed to call the API when CORS_ORIGINS is unset
var DefaultOrigins = []string{"http://localhost:8000", "https://sudx.xyz"}

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseToken string
	DatabaseType  string
	AdminAPIKey   string
	Origins       []string
}

// AllowAnyOrigin reports whether the origin list is the wildcard
func (c Config) AllowAnyOrigin() bool {
	for _, o := range c.Origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// ParseFlags validates flags and fills the rest from the environment.
// A missing database URL is not an error here: it surfaces on first connection.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var origins string

	fs := flag.NewFlagSet("mission-api", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (libsql, sqlite or postgres)")
	fs.StringVar(&origins, "origins", "", "Comma separated CORS origins, * for any")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.DatabaseToken, "token", "", "Database auth token (prefer env)")
	fs.StringVar(&cfg.AdminAPIKey, "admin-key", "", "Admin API key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5002
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("TURSO_DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseToken == "" {
		cfg.DatabaseToken = os.Getenv("TURSO_AUTH_TOKEN")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseLibSQL
		}
	}
	switch cfg.DatabaseType {
	case DatabaseLibSQL, DatabaseSQLite, DatabasePostgres:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.AdminAPIKey == "" {
		cfg.AdminAPIKey = os.Getenv("ADMIN_API_KEY")
	}

	if origins == "" {
		origins = os.Getenv("CORS_ORIGINS")
	}
	cfg.Origins = splitOrigins(origins)
	if len(cfg.Origins) == 0 {
		cfg.Origins = append([]string(nil), DefaultOrigins...)
	}

	return cfg, nil
}

func splitOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
