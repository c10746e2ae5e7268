package database

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/9910597111/BlindSketch/internal/words"
)

// Service is the optional Postgres word source. Game state itself is never
// persisted; the database only feeds the word pool at startup.
type Service struct {
	pool *pgxpool.Pool
}

// Configured reports whether database environment variables are present.
func Configured() bool {
	return os.Getenv("DB_HOST") != ""
}

// New connects using DB_HOST, DB_PORT, DB_USERNAME, DB_PASSWORD,
// DB_DATABASE and DB_SCHEMA from the environment.
func New(ctx context.Context) (*Service, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		url.QueryEscape(os.Getenv("DB_USERNAME")),
		url.QueryEscape(os.Getenv("DB_PASSWORD")),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_DATABASE"),
		os.Getenv("DB_SCHEMA"),
	)
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return &Service{pool: pool}, nil
}

// Words loads the full word list from the words table.
func (s *Service) Words(ctx context.Context) ([]words.Word, error) {
	rows, err := s.pool.Query(ctx, `SELECT word, difficulty FROM words`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var list []words.Word
	for rows.Next() {
		var w words.Word
		if err := rows.Scan(&w.Text, &w.Difficulty); err != nil {
			return nil, fmt.Errorf("scan word row: %w", err)
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return list, nil
}

// Health pings the database.
func (s *Service) Health(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the connection pool.
func (s *Service) Close() {
	s.pool.Close()
}
