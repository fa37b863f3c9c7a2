package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bylickilabs/GithubRepoCatalog/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS repos (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    path        TEXT NOT NULL UNIQUE,
    size_bytes  INTEGER NOT NULL,
    mtime       INTEGER NOT NULL,
    remote_url  TEXT
);
CREATE TABLE IF NOT EXISTS config (
    id           INTEGER PRIMARY KEY CHECK (id = 1),
    default_root TEXT NOT NULL DEFAULT '',
    open_command TEXT NOT NULL DEFAULT ''
);`

const repoColumns = "id, name, path, size_bytes, mtime, remote_url"

type sqliteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

func newSQLiteStore(dbPath string) (*sqliteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL;", "PRAGMA synchronous=NORMAL;"} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()

			return nil, fmt.Errorf("applying %s: %w", strings.TrimSuffix(pragma, ";"), err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Ping() error {
	return s.db.Ping()
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func (s *sqliteStore) Upsert(repo model.Repository) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO repos(name, path, size_bytes, mtime, remote_url)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			name=excluded.name,
			size_bytes=excluded.size_bytes,
			mtime=excluded.mtime,
			remote_url=excluded.remote_url`,
		repo.Name, repo.Path, repo.SizeBytes, repo.Mtime, nullString(repo.RemoteURL))

	return err
}

func (s *sqliteStore) ListAll() ([]model.Repository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT " + repoColumns + " FROM repos ORDER BY mtime DESC, id ASC")
	if err != nil {
		return nil, err
	}

	return scanRepos(rows)
}

func (s *sqliteStore) Search(query string) ([]model.Repository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := "%" + strings.ToLower(query) + "%"

	rows, err := s.db.Query(
		"SELECT "+repoColumns+` FROM repos
		WHERE lower(name) LIKE ? OR lower(path) LIKE ?
		ORDER BY mtime DESC, id ASC`, q, q)
	if err != nil {
		return nil, err
	}

	return scanRepos(rows)
}

func (s *sqliteStore) GetByPath(path string) (model.Repository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		"SELECT "+repoColumns+" FROM repos WHERE path = ?", path)

	repo, err := scanRepo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Repository{}, ErrNotFound
	}

	return repo, err
}

func (s *sqliteStore) FindByName(name string) ([]model.Repository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT "+repoColumns+` FROM repos
		WHERE lower(name) = ?
		ORDER BY mtime DESC, id ASC`, strings.ToLower(name))
	if err != nil {
		return nil, err
	}

	return scanRepos(rows)
}

func (s *sqliteStore) GetConfig() (model.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cfg model.Config

	err := s.db.QueryRow(
		"SELECT default_root, open_command FROM config WHERE id = 1").
		Scan(&cfg.DefaultRoot, &cfg.OpenCommand)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultConfig(), nil
	}

	return cfg, err
}

func (s *sqliteStore) SaveConfig(cfg model.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO config(id, default_root, open_command)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			default_root=excluded.default_root,
			open_command=excluded.open_command`,
		cfg.DefaultRoot, cfg.OpenCommand)

	return err
}

// nullString maps the empty string to SQL NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}

	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRepo(row rowScanner) (model.Repository, error) {
	var (
		repo   model.Repository
		remote sql.NullString
	)

	if err := row.Scan(&repo.ID, &repo.Name, &repo.Path, &repo.SizeBytes, &repo.Mtime, &remote); err != nil {
		return model.Repository{}, err
	}

	repo.RemoteURL = remote.String

	return repo, nil
}

func scanRepos(rows *sql.Rows) ([]model.Repository, error) {
	defer func() { _ = rows.Close() }()

	repos := make([]model.Repository, 0)

	for rows.Next() {
		repo, err := scanRepo(rows)
		if err != nil {
			return nil, err
		}

		repos = append(repos, repo)
	}

	return repos, rows.Err()
}
