package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"shortgen/internal/api"
)

// ErrLocked reports that another shortgen process holds the cache.
var ErrLocked = errors.New("cache database is locked by another process")

// Store manages snapshot persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

const schema = `
CREATE TABLE IF NOT EXISTS projects (
    project_id   TEXT PRIMARY KEY,
    description  TEXT NOT NULL DEFAULT '',
    status       TEXT NOT NULL DEFAULT '',
    created_at   TEXT NOT NULL DEFAULT '',
    fetched_at   TEXT NOT NULL,
    payload_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
`

const (
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// Open initializes or connects to the snapshot database at path. A file lock
// next to the database keeps concurrent shortgen invocations from interleaving
// writes.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("cache path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}

	return &Store{db: db, path: path, lock: lock}, nil
}

// Close releases the database connection and the file lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var firstErr error
	if s.db != nil {
		firstErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Put stores a snapshot, replacing any previous copy of the same project.
func (s *Store) Put(ctx context.Context, project *api.Project) error {
	if project == nil || strings.TrimSpace(project.ProjectID) == "" {
		return errors.New("project with id required")
	}
	payload, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	fetchedAt := time.Now().UTC().Format(time.RFC3339Nano)

	return s.execWithRetry(ctx,
		`INSERT INTO projects (project_id, description, status, created_at, fetched_at, payload_json)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(project_id) DO UPDATE SET
             description = excluded.description,
             status = excluded.status,
             created_at = excluded.created_at,
             fetched_at = excluded.fetched_at,
             payload_json = excluded.payload_json`,
		project.ProjectID,
		project.Description,
		project.Status,
		project.CreatedAt,
		fetchedAt,
		string(payload),
	)
}

// PutAll stores every snapshot in one pass. Used after a successful list call.
func (s *Store) PutAll(ctx context.Context, projects []api.Project) error {
	for i := range projects {
		if err := s.Put(ctx, &projects[i]); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the cached snapshot for a project, or ok=false when absent.
func (s *Store) Get(ctx context.Context, projectID string) (*api.Project, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT payload_json FROM projects WHERE project_id = ?`, projectID)
	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get snapshot: %w", err)
	}
	project, err := decodeSnapshot(payload)
	if err != nil {
		return nil, false, err
	}
	return project, true, nil
}

// List returns every cached snapshot, newest creation first.
func (s *Store) List(ctx context.Context) ([]api.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload_json FROM projects ORDER BY created_at DESC, project_id`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var projects []api.Project
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		project, err := decodeSnapshot(payload)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return projects, nil
}

// Delete removes a cached snapshot. Deleting an absent project is a no-op.
func (s *Store) Delete(ctx context.Context, projectID string) error {
	return s.execWithRetry(ctx,
		`DELETE FROM projects WHERE project_id = ?`, projectID)
}

// Stats returns the number of cached snapshots per status.
func (s *Store) Stats(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM projects GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("cache stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats[status] = count
	}
	return stats, rows.Err()
}

// Prune drops snapshots whose project is no longer known to the backend.
func (s *Store) Prune(ctx context.Context, keep []string) (int, error) {
	existing, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	keepSet := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id] = struct{}{}
	}
	removed := 0
	for i := range existing {
		if _, ok := keepSet[existing[i].ProjectID]; ok {
			continue
		}
		if err := s.Delete(ctx, existing[i].ProjectID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func decodeSnapshot(payload string) (*api.Project, error) {
	var project api.Project
	if err := json.Unmarshal([]byte(payload), &project); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &project, nil
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		_, lastErr = s.db.ExecContext(ctx, query, args...)
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == 5 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}
