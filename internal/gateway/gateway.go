// Package gateway provides the document-store persistence gateway.
//
// Entities are held as JSON documents addressed by collection + document id.
// The rest of the application issues exactly five operation shapes: create,
// point read, query by field equality, partial update and delete. Backends
// may be swapped (Postgres, SQLite, in-memory) without touching the services.
package gateway

import "context"

// Collection names used by the application.
const (
	Users    = "users"
	Families = "families"
	Lists    = "lists"
	Items    = "items"
)

// Document is a stored record. Reads return the document with its id injected
// under the "id" key; the id is never stored inside the data itself.
type Document map[string]any

// Gateway is the persistence gateway contract.
type Gateway interface {
	// Create stores a new document and returns its id. An empty id asks the
	// gateway to assign one; a non-empty id keys the document explicitly
	// (the users collection is keyed by the identity provider's uid).
	Create(ctx context.Context, collection, id string, doc Document) (string, error)

	// Get returns the document or (nil, nil) when absent.
	Get(ctx context.Context, collection, id string) (Document, error)

	// QueryEqual returns every document whose field equals value, as an
	// unordered snapshot taken at call time.
	QueryEqual(ctx context.Context, collection, field string, value any) ([]Document, error)

	// UpdatePartial merges fields into an existing document. Updating an
	// absent document is a no-op, which keeps retried cascades safe.
	UpdatePartial(ctx context.Context, collection, id string, fields Document) error

	// Delete removes a document. Deleting an absent document is a no-op.
	Delete(ctx context.Context, collection, id string) error

	// Close releases any resources held by the gateway.
	Close() error
}
