package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"passwordStrengthBackend/internal/config"
	"passwordStrengthBackend/internal/core/domain"
)

// SQLSource reads digests from the sha256_hex column of Table.
type SQLSource struct {
	db    *sql.DB
	table string
}

func NewSQLSource(db *sql.DB, table string) (*SQLSource, error) {
	if err := config.ValidateTableName(table); err != nil {
		return nil, err
	}
	return &SQLSource{db: db, table: table}, nil
}

// NewPostgresSource opens a lib/pq pool from cfg.
func NewPostgresSource(cfg *config.DatabaseConfig) (*SQLSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &SQLSource{db: db, table: cfg.Table}, nil
}

func (s *SQLSource) Name() domain.CorpusSource {
	return domain.CorpusPostgres
}

func (s *SQLSource) Load(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT sha256_hex FROM %s`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query corpus: %w", err)
	}
	defer rows.Close()

	var digests []string
	for rows.Next() {
		var digest string
		if err := rows.Scan(&digest); err != nil {
			return nil, fmt.Errorf("scan corpus row: %w", err)
		}
		digests = append(digests, digest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate corpus: %w", err)
	}
	return digests, nil
}

func (s *SQLSource) Close() error {
	return s.db.Close()
}
