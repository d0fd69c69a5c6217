package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"eventspace/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
)

// Postgres error codes checked when mapping constraint violations
// to domain errors.
const (
	pgUniqueViolation     = pq.ErrorCode("23505")
	pgForeignKeyViolation = pq.ErrorCode("23503")
)

// Constraint name from the migrations. The unique constraint on
// (title, start_date) is the authoritative guard against duplicate events.
const constraintEventTitleStartDate = "uq_event_title_start_date"

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// Migrate applies all pending migrations from migrationsPath.
func (s *Storage) Migrate(migrationsPath string) error {
	driver, err := migratepg.WithInstance(s.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// isConstraintViolation reports whether err is a violation of the named
// constraint. Any other integrity failure is left to the caller untouched.
func isConstraintViolation(err error, code pq.ErrorCode, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return pqErr.Code == code && pqErr.Constraint == constraint
}

// isErrorCode reports whether err carries the given postgres error code,
// regardless of which constraint fired.
func isErrorCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return pqErr.Code == code
}
