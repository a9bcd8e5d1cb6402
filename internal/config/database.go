package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig holds the static connection parameters of the store
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite or postgres

	// SQLite
	Path string `yaml:"path"`

	// Postgres
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the data source name for the configured driver
func (d DatabaseConfig) DSN() (string, error) {
	switch d.Driver {
	case DriverSQLite:
		return d.Path, nil
	case DriverPostgres:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(d.User, d.Password),
			Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
			Path:   "/" + d.Name,
		}
		q := url.Values{}
		q.Set("sslmode", d.SSLMode)
		u.RawQuery = q.Encode()
		return u.String(), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", d.Driver)
	}
}

func (d *DatabaseConfig) applyEnv() {
	if v := os.Getenv("BILLFORM_DB_DRIVER"); v != "" {
		d.Driver = v
	}
	if v := os.Getenv("BILLFORM_DB_PATH"); v != "" {
		d.Path = v
	}
	if v := os.Getenv("BILLFORM_DB_HOST"); v != "" {
		d.Host = v
	}
	if v := os.Getenv("BILLFORM_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			d.Port = port
		}
	}
	if v := os.Getenv("BILLFORM_DB_USER"); v != "" {
		d.User = v
	}
	if v := os.Getenv("BILLFORM_DB_PASSWORD"); v != "" {
		d.Password = v
	}
	if v := os.Getenv("BILLFORM_DB_NAME"); v != "" {
		d.Name = v
	}
}

func (d *DatabaseConfig) applyDefaults() {
	if d.Driver == "" {
		d.Driver = DriverSQLite
	}
	if d.Path == "" {
		if dir, err := DataDir(); err == nil {
			d.Path = filepath.Join(dir, "billing.db")
		} else {
			d.Path = "billing.db"
		}
	}
	if d.Host == "" {
		d.Host = "localhost"
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.User == "" {
		d.User = "postgres"
	}
	if d.Name == "" {
		d.Name = "billing_app"
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
}
