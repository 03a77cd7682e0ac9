package database

import (
	"fmt"
	"net/url"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration
type Config struct {
	Driver     string
	SQLitePath string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
}

// DSN returns the connection string gorm opens.
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL returns the database URL golang-migrate connects with.
func (c *Config) MigrateURL() string {
	if c.Driver == DriverSQLite {
		return "sqlite3://" + c.SQLitePath
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}
