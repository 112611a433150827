package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"smart-task-manager/internal/task/repository"
	pkgLog "smart-task-manager/pkg/log"
)

type implRepository struct {
	db    *sql.DB
	l     pkgLog.Logger
	now   func() time.Time
	newID func() string
}

// New creates a task repository on an already migrated database.
func New(db *sql.DB, l pkgLog.Logger) (repository.Repository, error) {
	if db == nil {
		return nil, errors.New("sqlite repository: nil db")
	}
	return &implRepository{
		db:    db,
		l:     l,
		now:   time.Now,
		newID: uuid.NewString,
	}, nil
}

// Open opens (creating if needed) the SQLite database at path and applies migrations.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
