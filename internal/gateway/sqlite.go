package gateway

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

// Ensure SQLite implements Gateway
var _ Gateway = (*SQLite)(nil)

// SQLite stores documents as JSON text in a single table.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite-backed gateway at the given path, creating parent
// directories and the schema as needed.
func NewSQLite(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			data       TEXT NOT NULL,
			PRIMARY KEY (collection, id)
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Create(ctx context.Context, collection, id string, doc Document) (string, error) {
	if id == "" {
		id = uuid.New().String()
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	query := `INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, collection, id, string(data)); err != nil {
		return "", fmt.Errorf("failed to create document: %w", err)
	}

	return id, nil
}

func (s *SQLite) Get(ctx context.Context, collection, id string) (Document, error) {
	query := `SELECT data FROM documents WHERE collection = ? AND id = ?`

	var data string
	err := s.db.QueryRowContext(ctx, query, collection, id).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return decodeDoc(id, []byte(data))
}

func (s *SQLite) QueryEqual(ctx context.Context, collection, field string, value any) ([]Document, error) {
	match, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query value: %w", err)
	}

	// json_extract normalizes both sides, so strings, numbers and booleans
	// compare by value. Field names are code-controlled, never user input.
	query := `
		SELECT id, data FROM documents
		WHERE collection = ? AND json_extract(data, ?) = json_extract(?, '$')
	`
	rows, err := s.db.QueryContext(ctx, query, collection, "$."+field, string(match))
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var results []Document
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc, err := decodeDoc(id, []byte(data))
		if err != nil {
			return nil, err
		}
		results = append(results, doc)
	}

	return results, rows.Err()
}

// UpdatePartial reads, merges and rewrites the document in one transaction.
// SQLite's json_patch drops keys set to null, which would break nullable
// claim fields, so the merge happens in Go.
func (s *SQLite) UpdatePartial(ctx context.Context, collection, id string, fields Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var data string
	err = tx.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	for k, v := range fields {
		doc[k] = v
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE documents SET data = ? WHERE collection = ? AND id = ?`,
		string(merged), collection, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	return tx.Commit()
}

func (s *SQLite) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = ? AND id = ?`
	if _, err := s.db.ExecContext(ctx, query, collection, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}
