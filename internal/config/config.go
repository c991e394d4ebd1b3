package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	DriverNone   = ""
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string
	TimeZone string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	MetricsEnabled bool

	RedisAddr string
	RedisDB   int

	DBDriver   string
	SQLitePath string
	MySQLHost  string
	MySQLPort  string
	MySQLDB    string
	MySQLUser  string
	MySQLPass  string

	VisitRecordTimeout time.Duration
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getenvDuration(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if p, err := time.ParseDuration(v); err == nil {
			return p
		}
	}
	return d
}

func getenvBool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		AppEnv:   getenv("APP_ENV", "development"),
		LogLevel: getenv("LOG_LEVEL", "info"),
		TimeZone: getenv("APP_TIMEZONE", "Local"),

		ReadTimeout:     getenvDuration("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getenvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getenvDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),

		MetricsEnabled: getenvBool("METRICS_ENABLED", true),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		DBDriver:   strings.ToLower(os.Getenv("DB_DRIVER")),
		SQLitePath: getenv("SQLITE_PATH", "merhaba.db"),
		MySQLHost:  getenv("MYSQL_HOST", "mysql"),
		MySQLPort:  getenv("MYSQL_PORT", "3306"),
		MySQLDB:    getenv("MYSQL_DB", "merhaba"),
		MySQLUser:  getenv("MYSQL_USER", "merhaba"),
		MySQLPass:  getenv("MYSQL_PASS", "merhaba"),

		VisitRecordTimeout: getenvDuration("VISIT_RECORD_TIMEOUT", 500*time.Millisecond),
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.TimeZone, err)
	}
	switch c.DBDriver {
	case DriverNone:
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// Location resolves TimeZone; "Local" and "" both mean the process zone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || strings.EqualFold(c.TimeZone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.TimeZone)
}

func (c *Config) Addr() string { return ":" + c.AppPort }

func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }

func (c *Config) DatabaseEnabled() bool { return c.DBDriver != DriverNone }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN returns the connection string for the selected driver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverMySQL:
		return c.MySQLDSN()
	case DriverSQLite:
		return c.SQLitePath
	}
	return ""
}
