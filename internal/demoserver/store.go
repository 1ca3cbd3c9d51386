package demoserver

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sergi/go-diff/diffmatchpatch"

	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed schema.sql
var schemaFS embed.FS

var ErrSubmissionNotFound = errors.New("submission not found")

// Submission is one payload the demo API received.
type Submission struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Payload    string `json:"payload"`
	ReceivedAt int64  `json:"received_at"`
}

// Store persists received submissions in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore runs the schema migration against db and returns a Store.
func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenStore opens (or creates) the SQLite database at path. An empty
// path opens an in-memory database, which is enough for a demo run.
func OpenStore(path string) (*Store, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening submissions database: %w", err)
	}
	if path == ":memory:" {
		// each pooled connection would otherwise get its own empty DB
		db.SetMaxOpenConns(1)
	}
	return NewStore(db)
}

// Insert records a received payload and returns the stored row.
func (s *Store) Insert(ctx context.Context, username, payload string) (*Submission, error) {
	sub := &Submission{
		ID:         uuid.NewString(),
		Username:   username,
		Payload:    payload,
		ReceivedAt: time.Now().Unix(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO submissions (id, username, payload, received_at) VALUES (?, ?, ?, ?)`,
		sub.ID, sub.Username, sub.Payload, sub.ReceivedAt)
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}
	return sub, nil
}

// List returns submissions newest first. limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]Submission, error) {
	q := `SELECT id, username, payload, received_at FROM submissions ORDER BY rowid DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.Username, &sub.Payload, &sub.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// Get returns the submission with the given id.
func (s *Store) Get(ctx context.Context, id string) (*Submission, error) {
	var sub Submission
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, payload, received_at FROM submissions WHERE id = ?`, id).
		Scan(&sub.ID, &sub.Username, &sub.Payload, &sub.ReceivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return &sub, nil
}

// Previous returns the submission received immediately before id, or
// ErrSubmissionNotFound when id is the first one.
func (s *Store) Previous(ctx context.Context, id string) (*Submission, error) {
	var sub Submission
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, payload, received_at FROM submissions
		 WHERE rowid < (SELECT rowid FROM submissions WHERE id = ?)
		 ORDER BY rowid DESC LIMIT 1`, id).
		Scan(&sub.ID, &sub.Username, &sub.Payload, &sub.ReceivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("previous submission: %w", err)
	}
	return &sub, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// PayloadDiff renders a readable text diff between two payloads, used
// by the workshop to show what changed between attempts.
func PayloadDiff(prev, cur string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(prev, cur, false)
	return dmp.DiffPrettyText(diffs)
}
