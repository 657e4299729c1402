package config

import (
	"fmt"
	"regexp"
	"strings"

	"passwordStrengthBackend/internal/core/domain"
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Table    string
}

func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Host:    "localhost",
		Port:    "5432",
		User:    "postgres",
		DBName:  "password_strength",
		SSLMode: "disable",
		Table:   "leaked_passwords",
	}
}

// GetDSN renders a lib/pq key/value connection string.
func (c *DatabaseConfig) GetDSN() string {
	parts := []string{
		"host=" + quoteDSN(c.Host),
		"port=" + quoteDSN(c.Port),
		"user=" + quoteDSN(c.User),
		"dbname=" + quoteDSN(c.DBName),
		"sslmode=" + quoteDSN(c.SSLMode),
	}
	if c.Password != "" {
		parts = append(parts, "password="+quoteDSN(c.Password))
	}
	return strings.Join(parts, " ")
}

func (c *DatabaseConfig) Validate() error {
	return ValidateTableName(c.Table)
}

func ValidateTableName(table string) error {
	if !tableNamePattern.MatchString(table) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTableName, table)
	}
	return nil
}

func quoteDSN(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
