package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"passwordStrengthBackend/internal/core/domain"
)

type Config struct {
	HTTPAddr   string
	LogLevel   string
	LogFormat  string
	ReportPath string

	Corpus   CorpusConfig
	Generate domain.GenerationCriteria
	Audit    AuditConfig
}

type CorpusConfig struct {
	Source   domain.CorpusSource
	File     string
	Hashed   bool
	Database *DatabaseConfig
	Redis    RedisConfig
	Object   ObjectConfig
}

type RedisConfig struct {
	URL string
	Key string
}

type ObjectConfig struct {
	Endpoint  string
	Bucket    string
	Object    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

type AuditConfig struct {
	Workers  int
	MaxBatch int
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	db := NewDatabaseConfig()
	db.Host = getEnv("CORPUS_DB_HOST", db.Host)
	db.Port = getEnv("CORPUS_DB_PORT", db.Port)
	db.User = getEnv("CORPUS_DB_USER", db.User)
	db.Password = getEnv("CORPUS_DB_PASSWORD", db.Password)
	db.DBName = getEnv("CORPUS_DB_NAME", db.DBName)
	db.SSLMode = getEnv("CORPUS_DB_SSLMODE", db.SSLMode)
	db.Table = getEnv("CORPUS_DB_TABLE", db.Table)

	p := &parser{}
	cfg := &Config{
		HTTPAddr:   getEnv("HTTP_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "json"),
		ReportPath: getEnv("REPORT_PATH", "audit_reports.log"),
		Corpus: CorpusConfig{
			Source:   domain.CorpusSource(strings.ToLower(getEnv("CORPUS_SOURCE", string(domain.CorpusSeed)))),
			File:     os.Getenv("CORPUS_FILE"),
			Hashed:   p.getBool("CORPUS_HASHED", false),
			Database: db,
			Redis: RedisConfig{
				URL: getEnv("CORPUS_REDIS_URL", "redis://localhost:6379/0"),
				Key: getEnv("CORPUS_REDIS_KEY", "leaked_passwords"),
			},
			Object: ObjectConfig{
				Endpoint:  os.Getenv("CORPUS_S3_ENDPOINT"),
				Bucket:    os.Getenv("CORPUS_S3_BUCKET"),
				Object:    os.Getenv("CORPUS_S3_OBJECT"),
				AccessKey: os.Getenv("CORPUS_S3_ACCESS_KEY"),
				SecretKey: os.Getenv("CORPUS_S3_SECRET_KEY"),
				UseSSL:    p.getBool("CORPUS_S3_USE_SSL", true),
			},
		},
		Generate: domain.GenerationCriteria{
			MinScore:    p.getInt("GENERATE_MIN_SCORE", 80),
			MinDays:     p.getFloat("GENERATE_MIN_DAYS", 36500),
			MaxAttempts: p.getInt("GENERATE_MAX_ATTEMPTS", 10),
		},
		Audit: AuditConfig{
			Workers:  p.getInt("AUDIT_WORKERS", 4),
			MaxBatch: p.getInt("AUDIT_MAX_BATCH", 1000),
		},
	}
	if p.err != nil {
		return nil, p.err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Corpus.Source {
	case domain.CorpusSeed:
	case domain.CorpusFile:
		if c.Corpus.File == "" {
			return fmt.Errorf("%w: CORPUS_FILE is required for the file source", domain.ErrInvalidConfig)
		}
	case domain.CorpusPostgres:
		if err := c.Corpus.Database.Validate(); err != nil {
			return err
		}
	case domain.CorpusRedis:
		if c.Corpus.Redis.Key == "" {
			return fmt.Errorf("%w: CORPUS_REDIS_KEY is required for the redis source", domain.ErrInvalidConfig)
		}
	case domain.CorpusS3:
		if c.Corpus.Object.Endpoint == "" || c.Corpus.Object.Bucket == "" || c.Corpus.Object.Object == "" {
			return fmt.Errorf("%w: CORPUS_S3_ENDPOINT, CORPUS_S3_BUCKET and CORPUS_S3_OBJECT are required for the s3 source", domain.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownCorpusSource, c.Corpus.Source)
	}

	if c.Generate.MinScore < 0 || c.Generate.MinScore > 100 {
		return fmt.Errorf("%w: GENERATE_MIN_SCORE must be within 0..100", domain.ErrInvalidConfig)
	}
	if c.Generate.MinDays < 0 {
		return fmt.Errorf("%w: GENERATE_MIN_DAYS must not be negative", domain.ErrInvalidConfig)
	}
	if c.Generate.MaxAttempts < 1 {
		return fmt.Errorf("%w: GENERATE_MAX_ATTEMPTS must be positive", domain.ErrInvalidConfig)
	}
	if c.Audit.Workers < 1 || c.Audit.MaxBatch < 1 {
		return fmt.Errorf("%w: AUDIT_WORKERS and AUDIT_MAX_BATCH must be positive", domain.ErrInvalidConfig)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// parser keeps the first conversion error so FromEnv can report it once.
type parser struct {
	err error
}

func (p *parser) getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, raw)
		return fallback
	}
	return v
}

func (p *parser) getFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(key, raw)
		return fallback
	}
	return v
}

func (p *parser) getBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, raw)
		return fallback
	}
	return v
}

func (p *parser) fail(key, raw string) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %s=%q", domain.ErrInvalidConfig, key, raw)
	}
}
