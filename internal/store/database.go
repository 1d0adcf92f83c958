package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/quantacloud/qcc/internal/logger"
	"github.com/quantacloud/qcc/migrations"
)

// DB wraps the sql.DB handle of the local cache database.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// DefaultCachePath resolves the platform-specific location of the job
// cache database, next to the config file.
func DefaultCachePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".qcc-jobs.db"
	}
	return filepath.Join(dir, "qcc", "jobs.db")
}

// NewConnectSQLite opens (creating if necessary) the SQLite cache database
// at path and verifies the connection with a ping. An empty path selects
// [DefaultCachePath].
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if path == "" {
		path = DefaultCachePath()
	}

	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to job cache database")

	return &DB{DB: conn, logger: log}, nil
}

// Migrate brings the cache schema up to date using the embedded goose
// migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating DB dir: %w", err)
		}
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
