package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/marmita-api/internal/logger"
	"github.com/MKhiriev/marmita-api/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a *sql.DB with the dialect-specific pieces the repositories need:
// a squirrel builder with the right placeholder format and a classifier for
// unique-constraint violations.
type DB struct {
	*sql.DB
	dialect string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:      conn,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
	}
}

// Dialect returns the name of the SQL dialect spoken by the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// isUniqueViolation reports whether err was caused by a UNIQUE constraint.
func (db *DB) isUniqueViolation(err error) bool {
	switch db.dialect {
	case migrations.DialectPostgres:
		return isPostgresUniqueViolation(err)
	case migrations.DialectSQLite:
		return isSQLiteUniqueViolation(err)
	}
	return false
}

// dialectFromDSN picks a driver from the form of the DSN.
//
//	postgres://..., postgresql://..., "host=... user=..." -> postgres
//	file:..., *.db, *.sqlite, :memory:                  -> sqlite3
func dialectFromDSN(dsn string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(dsn))

	switch {
	case lower == "":
		return "", false
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return migrations.DialectPostgres, true
	case strings.HasPrefix(lower, "file:"), lower == ":memory:":
		return migrations.DialectSQLite, true
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		return migrations.DialectSQLite, true
	case strings.Contains(lower, "host=") || strings.Contains(lower, "dbname="):
		return migrations.DialectPostgres, true
	}

	return "", false
}
