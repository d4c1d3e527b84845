package config

import (
	"fmt"
	"net"
	"time"
	_ "time/tzdata"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMemory   = "memory"
)

type Config struct {
	App      AppConfig      `yaml:"app" env-prefix:"APP_"`
	HTTP     HTTPConfig     `yaml:"http" env-prefix:"HTTP_"`
	Database DatabaseConfig `yaml:"database" env-prefix:"DB_"`
}

type AppConfig struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `yaml:"pretty" env:"PRETTY" env-default:"false"`
	Timezone string `yaml:"timezone" env:"TIMEZONE" env-default:"UTC"`
}

type HTTPConfig struct {
	Addr           string   `yaml:"addr" env:"ADDR" env-default:":8080"`
	CORSOrigins    []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
	MetricsEnabled bool     `yaml:"metrics_enabled" env:"METRICS_ENABLED" env-default:"true"`
	UIEnabled      bool     `yaml:"ui_enabled" env:"UI_ENABLED" env-default:"true"`
}

type DatabaseConfig struct {
	Driver        string `yaml:"driver" env:"DRIVER" env-default:"postgres"`
	Port          string `yaml:"port" env:"PORT"`
	Host          string `yaml:"host" env:"HOST" env-default:"localhost"`
	Name          string `yaml:"name" env:"NAME" env-default:"notes"`
	User          string `yaml:"user" env:"USER" env-default:"notes"`
	Password      string `yaml:"password" env:"PASSWORD"`
	RetryAttempts uint   `yaml:"retry_attempts" env:"RETRY_ATTEMPTS" env-default:"5"`
	MaxConns      int32  `yaml:"max_conns" env:"MAX_CONNS" env-default:"10"`
	Migrate       bool   `yaml:"migrate" env:"MIGRATE" env-default:"true"`
}

// Addr joins host and port, falling back to the driver's default port.
func (c DatabaseConfig) Addr() string {
	port := c.Port
	if port == "" {
		switch c.Driver {
		case DriverMySQL:
			port = "3306"
		default:
			port = "5432"
		}
	}

	return net.JoinHostPort(c.Host, port)
}

func (c AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %v", c.Timezone, err)
	}

	return loc, nil
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverMemory:
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	if _, err := c.App.Location(); err != nil {
		return err
	}

	return nil
}
