package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Storage modes. Resolved once at startup; nothing outside cmd/server
// branches on this.
const (
	StorageLocal    = "local"
	StoragePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

func (c *JWTConfig) ExpirationDuration() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

type StorageConfig struct {
	Mode    string
	DataDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Load reads configuration from the environment with sane local-mode
// defaults. A fresh checkout runs against the file-backed store with no
// setup; STORAGE_MODE=postgres switches to the real database.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("JWT_EXPIRATION_HOURS", 24)
	v.SetDefault("STORAGE_MODE", StorageLocal)
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "motioncut")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "motioncut")
	v.SetDefault("DB_SSLMODE", "disable")

	return &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Mode: v.GetString("GIN_MODE"),
		},
		JWT: JWTConfig{
			Secret:          v.GetString("JWT_SECRET"),
			ExpirationHours: v.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Storage: StorageConfig{
			Mode:    v.GetString("STORAGE_MODE"),
			DataDir: v.GetString("DATA_DIR"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
	}
}
