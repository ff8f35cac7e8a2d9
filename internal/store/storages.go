package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/marmita-api/internal/config"
	"github.com/MKhiriev/marmita-api/internal/logger"
	"github.com/MKhiriev/marmita-api/migrations"
)

// Storages bundles the repositories used by the service layer together with
// the connection they share.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.DSN, applies the
// schema migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	if cfg.DB.InMemory() {
		log.Warn().Str("func", "NewStorages").Msg("using an in-memory database, accounts are lost on restart; set STORAGE_DB_DATABASE_URI or DATABASE_URL")
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, ok := dialectFromDSN(cfg.DSN)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
	}

	switch dialect {
	case migrations.DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}
