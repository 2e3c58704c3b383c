// Package cache implements the local preference cache on an embedded sqlite
// file. It is the persistence tier beneath the remote store: writes here are
// synchronous and local, so a save is captured even when the remote store is
// unreachable.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"atlas/config"
	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS preference_cache (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteCache is a string-keyed JSON document store backed by a sqlite file.
// Keys are "<namespace>:<userId>".
type SQLiteCache struct {
	db        *sql.DB
	namespace string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens (or creates) the cache database and ensures its schema.
func New(params Params) (*SQLiteCache, error) {
	path := params.Config.Cache.Path
	if path == "" {
		path = filepath.Join("data", "customization.db")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create cache directory")
		}
	}

	// WAL plus a busy timeout keeps the single-writer file usable when two
	// requests land on it at once.
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?"
	} else {
		dsn += "&"
	}
	dsn += "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open cache database")
	}

	// SQLite doesn't support multiple writers, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "ensure cache schema")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing customization cache")

			return db.Close()
		},
	})

	return &SQLiteCache{
		db:        db,
		namespace: params.Config.Cache.Namespace,
	}, nil
}

// NewWithDB wires an already-open database, used by tests.
func NewWithDB(db *sql.DB, namespace string) (*SQLiteCache, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "ensure cache schema")
	}

	return &SQLiteCache{db: db, namespace: namespace}, nil
}

// Get returns the cached document for the user. A missing row surfaces
// repository.ErrCacheMiss; a row whose JSON no longer parses surfaces
// repository.ErrCacheCorrupt and is left in place to be overwritten by the
// next Put.
func (c *SQLiteCache) Get(ctx context.Context, userID uuid.UUID) (*entity.PreferenceDocument, error) {
	var value string
	err := c.db.QueryRowContext(ctx,
		`SELECT value FROM preference_cache WHERE key = ?`, c.key(userID),
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "read cache entry")
	}

	var doc entity.PreferenceDocument
	if err := json.Unmarshal([]byte(value), &doc); err != nil {
		return nil, errors.Wrapf(repository.ErrCacheCorrupt, "key %s: %v", c.key(userID), err)
	}

	return &doc, nil
}

// Put stores the document under the user's namespaced key, replacing any
// previous entry.
func (c *SQLiteCache) Put(ctx context.Context, doc *entity.PreferenceDocument) error {
	value, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshal document")
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO preference_cache (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		c.key(doc.UserID), string(value), doc.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return errors.Wrap(err, "write cache entry")
	}

	return nil
}

// Ping reports whether the cache database is usable, for health checks.
func (c *SQLiteCache) Ping(ctx context.Context) error {
	return errors.Wrap(c.db.PingContext(ctx), "ping cache database")
}

func (c *SQLiteCache) key(userID uuid.UUID) string {
	return c.namespace + ":" + userID.String()
}
