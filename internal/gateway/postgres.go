package gateway

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// Ensure Postgres implements Gateway
var _ Gateway = (*Postgres)(nil)

// Postgres stores documents in a single jsonb-backed table.
type Postgres struct {
	db *sql.DB
}

// NewPostgres opens a Postgres-backed gateway and ensures its schema.
func NewPostgres(databaseURL string) (*Postgres, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			data       JSONB NOT NULL,
			PRIMARY KEY (collection, id)
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) Create(ctx context.Context, collection, id string, doc Document) (string, error) {
	if id == "" {
		id = uuid.New().String()
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	query := `INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`
	if _, err := p.db.ExecContext(ctx, query, collection, id, data); err != nil {
		return "", fmt.Errorf("failed to create document: %w", err)
	}

	return id, nil
}

func (p *Postgres) Get(ctx context.Context, collection, id string) (Document, error) {
	query := `SELECT data FROM documents WHERE collection = $1 AND id = $2`

	var data []byte
	err := p.db.QueryRowContext(ctx, query, collection, id).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return decodeDoc(id, data)
}

func (p *Postgres) QueryEqual(ctx context.Context, collection, field string, value any) ([]Document, error) {
	match, err := json.Marshal(Document{field: value})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query value: %w", err)
	}

	query := `SELECT id, data FROM documents WHERE collection = $1 AND data @> $2::jsonb`
	rows, err := p.db.QueryContext(ctx, query, collection, match)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var results []Document
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc, err := decodeDoc(id, data)
		if err != nil {
			return nil, err
		}
		results = append(results, doc)
	}

	return results, rows.Err()
}

func (p *Postgres) UpdatePartial(ctx context.Context, collection, id string, fields Document) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}

	query := `UPDATE documents SET data = data || $3::jsonb WHERE collection = $1 AND id = $2`
	if _, err := p.db.ExecContext(ctx, query, collection, id, data); err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	return nil
}

func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`
	if _, err := p.db.ExecContext(ctx, query, collection, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

func decodeDoc(id string, data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	doc["id"] = id
	return doc, nil
}
