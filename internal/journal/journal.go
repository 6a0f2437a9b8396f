// Package journal persists provisioning run history to a local SQLite
// database: one row per run and one row per reconciled object. The
// journal is an audit convenience; it is never a source of truth for
// remote state, and journaling failures must not fail a run.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/sitewright/internal/reconcile"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Journal lifecycle errors.
var (
	ErrClosed      = errors.New("journal is closed")
	ErrRunNotFound = errors.New("run not found")
)

const dbFileName = "sitewright.db"

// Run is one journaled provisioning run.
type Run struct {
	ID         string
	Site       string
	Source     string // "builtin" or the manifest path
	DryRun     bool
	Status     string
	StartedAt  time.Time
	FinishedAt time.Time
	Created    int
	Updated    int
	Unchanged  int
}

// ActionRow is one journaled reconciliation step.
type ActionRow struct {
	Seq     int
	Library string
	Kind    string
	Name    string
	Op      string
	Detail  string
}

// Journal wraps the SQLite database holding run history.
type Journal struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// Open creates dataDir if needed, opens the journal database inside it,
// and ensures the schema exists.
func Open(dataDir string) (*Journal, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the database. Idempotent.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return nil
	}
	j.closed = true
	return j.db.Close()
}

// BeginRun inserts a run row in the running state and returns a recorder
// for its actions. Run IDs are UUID v7, so lexical order follows time.
func (j *Journal) BeginRun(site, source string, dryRun bool) (*RunRecorder, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return nil, ErrClosed
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating run ID: %w", err)
	}

	_, err = j.db.Exec(
		"INSERT INTO runs (run_id, site, source, dry_run, status, started_at) VALUES (?, ?, ?, ?, ?, ?)",
		id.String(), site, source, dryRun, StatusRunning, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting run: %w", err)
	}
	return &RunRecorder{journal: j, runID: id.String()}, nil
}

// RunRecorder appends action rows to one run and finalizes it.
type RunRecorder struct {
	journal *Journal
	runID   string
	seq     int
}

// ID returns the run's identifier.
func (r *RunRecorder) ID() string { return r.runID }

// Record appends one reconciliation action to the run.
func (r *RunRecorder) Record(a reconcile.Action) error {
	r.journal.mu.Lock()
	defer r.journal.mu.Unlock()
	if r.journal.closed {
		return ErrClosed
	}

	r.seq++
	_, err := r.journal.db.Exec(
		"INSERT INTO run_actions (run_id, seq, library, kind, name, op, detail) VALUES (?, ?, ?, ?, ?, ?, ?)",
		r.runID, r.seq, a.Library, a.Kind, a.Name, string(a.Op), a.Detail,
	)
	if err != nil {
		return fmt.Errorf("inserting action: %w", err)
	}
	return nil
}

// Finish marks the run finished with the given status and summary counts.
func (r *RunRecorder) Finish(status string, created, updated, unchanged int) error {
	r.journal.mu.Lock()
	defer r.journal.mu.Unlock()
	if r.journal.closed {
		return ErrClosed
	}

	_, err := r.journal.db.Exec(
		"UPDATE runs SET status = ?, finished_at = ?, created_count = ?, updated_count = ?, unchanged_count = ? WHERE run_id = ?",
		status, time.Now().UTC().Format(time.RFC3339), created, updated, unchanged, r.runID,
	)
	if err != nil {
		return fmt.Errorf("finishing run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (j *Journal) ListRuns(limit int) ([]Run, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return nil, ErrClosed
	}

	rows, err := j.db.Query(
		`SELECT run_id, site, source, dry_run, status, started_at,
		        COALESCE(finished_at, ''), created_count, updated_count, unchanged_count
		 FROM runs ORDER BY run_id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, finished string
		if err := rows.Scan(&r.ID, &r.Site, &r.Source, &r.DryRun, &r.Status,
			&started, &finished, &r.Created, &r.Updated, &r.Unchanged); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		if finished != "" {
			r.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunActions returns the journaled actions of one run in execution order.
func (j *Journal) RunActions(runID string) ([]ActionRow, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return nil, ErrClosed
	}

	var exists int
	err := j.db.QueryRow("SELECT 1 FROM runs WHERE run_id = ?", runID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("checking run: %w", err)
	}

	rows, err := j.db.Query(
		"SELECT seq, library, kind, name, op, detail FROM run_actions WHERE run_id = ? ORDER BY seq",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying actions: %w", err)
	}
	defer rows.Close()

	var actions []ActionRow
	for rows.Next() {
		var a ActionRow
		if err := rows.Scan(&a.Seq, &a.Library, &a.Kind, &a.Name, &a.Op, &a.Detail); err != nil {
			return nil, fmt.Errorf("scanning action: %w", err)
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
