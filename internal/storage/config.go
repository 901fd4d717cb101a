package storage

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Supported drivers.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// Config selects and parameterizes a backend. Path is used by SQLite;
// Host, Port, User, Password and Database by MySQL.
type Config struct {
	Driver   string `yaml:"driver"`
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`

	// Timeout bounds every individual store call made by a game session.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns a SQLite configuration under ~/.snake.
func DefaultConfig() Config {
	return Config{
		Driver:   DriverSQLite,
		Path:     "~/.snake/scores.db",
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Database: "snake_game_db",
		Timeout:  2 * time.Second,
	}
}

// Validate checks that the fields required by the selected driver are set.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("storage: sqlite driver requires a path")
		}
	case DriverMySQL:
		if c.Host == "" || c.User == "" || c.Database == "" {
			return fmt.Errorf("storage: mysql driver requires host, user and database")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("storage: invalid mysql port %d", c.Port)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("storage: unknown driver %q", c.Driver)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("storage: negative timeout %s", c.Timeout)
	}
	return nil
}

// MySQLConfig builds the driver configuration. An empty database name
// yields a server-level connection, used to create the database.
func (c Config) MySQLConfig(database string) *mysql.Config {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.User = c.User
	mc.Passwd = c.Password
	mc.DBName = database
	mc.ParseTime = true
	if c.Timeout > 0 {
		mc.Timeout = c.Timeout
	}
	return mc
}

// Masked returns a copy safe for printing.
func (c Config) Masked() Config {
	if c.Password != "" {
		c.Password = "********"
	}
	return c
}

// expandPath resolves a leading ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
