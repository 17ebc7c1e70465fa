package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultAdminPassword is used when no admin password is configured.
// It mirrors the historical deployment default and is intentionally weak;
// real deployments are expected to set ADMIN_PASSWORD.
const DefaultAdminPassword = "admin123"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port      string `yaml:"port" env:"SERVER_PORT"`
		Mode      string `yaml:"mode" env:"SERVER_MODE"`
		StaticDir string `yaml:"static_dir" env:"SERVER_STATIC_DIR"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		URL             string `yaml:"url" env:"DATABASE_URL"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Admin struct {
		Password        string `yaml:"password" env:"ADMIN_PASSWORD"`
		TokenSecret     string `yaml:"token_secret" env:"ADMIN_TOKEN_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"ADMIN_TOKEN_EXPIRATION"`
		TokenIssuer     string `yaml:"token_issuer" env:"ADMIN_TOKEN_ISSUER"`
	} `yaml:"admin"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus environment are enough to run
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.StaticDir = "dist"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "classform"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Admin defaults
	config.Admin.Password = DefaultAdminPassword
	config.Admin.TokenExpiration = "1h"
	config.Admin.TokenIssuer = "classform.app"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Database.URL == "" && config.Database.Host == "" {
		return fmt.Errorf("database host or url is required")
	}

	if config.Admin.Password == "" {
		return fmt.Errorf("admin password is required")
	}

	if _, err := time.ParseDuration(config.Admin.TokenExpiration); err != nil {
		return fmt.Errorf("invalid admin token expiration format: %w", err)
	}

	return nil
}

// AdminTokenExpiration returns the parsed admin token lifetime.
func (c *Config) AdminTokenExpiration() time.Duration {
	d, err := time.ParseDuration(c.Admin.TokenExpiration)
	if err != nil {
		return time.Hour
	}
	return d
}

// AdminTokenSecret returns the signing secret for admin session tokens.
// It falls back to the admin password so an unconfigured deployment still
// issues verifiable tokens.
func (c *Config) AdminTokenSecret() string {
	if c.Admin.TokenSecret != "" {
		return c.Admin.TokenSecret
	}
	return c.Admin.Password
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
