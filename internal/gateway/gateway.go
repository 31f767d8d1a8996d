// Package gateway is the boundary between the application and the hosted
// record store and blob store. The rest of the service depends only on the
// capability interfaces here; the Supabase implementation lives alongside
// them so tests can substitute in-memory fakes.
package gateway

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when a lookup matches zero rows.
var ErrNotFound = errors.New("record not found")

// ErrTimeout is returned when a remote call exceeds the gateway deadline.
var ErrTimeout = errors.New("gateway call timed out")

// ErrConflict is returned when a write collides with an existing object,
// e.g. a storage upload to an occupied key with upsert disabled.
var ErrConflict = errors.New("conflicting remote object")

// Order names a sort column for SelectAll. Multiple orders are applied in
// the sequence given.
type Order struct {
	Column    string
	Ascending bool
}

// UploadOptions carry the storage write options the blob store honors.
type UploadOptions struct {
	ContentType  string
	CacheControl string
	Upsert       bool
}

// RecordStore is the relational capability set consumed by the application.
// out parameters receive the decoded rows; writes that return rows decode
// the representation the store sends back.
type RecordStore interface {
	// Insert writes record into table and decodes the inserted rows into out.
	Insert(ctx context.Context, table string, record interface{}, out interface{}) error
	// SelectOne fetches the single row where column equals value. Zero
	// matching rows yield ErrNotFound.
	SelectOne(ctx context.Context, table, column, value string, out interface{}) error
	// SelectAll fetches every row of table in the given order.
	SelectAll(ctx context.Context, table string, out interface{}, orders ...Order) error
	// Update applies fields to rows where column equals value, decoding the
	// updated rows into out when out is non-nil. The returned count is the
	// exact number of rows affected.
	Update(ctx context.Context, table, column, value string, fields map[string]interface{}, out interface{}) (int64, error)
	// Delete removes rows where column equals value. Deleting zero rows is
	// not an error.
	Delete(ctx context.Context, table, column, value string) error
}

// BlobStore is the object-storage capability set.
type BlobStore interface {
	// Upload writes data under bucket/key. With Upsert disabled an occupied
	// key fails with ErrConflict.
	Upload(ctx context.Context, bucket, key string, data io.Reader, opts UploadOptions) error
	// PublicURL resolves the publicly reachable URL for an object.
	PublicURL(bucket, key string) (string, error)
	// Remove deletes objects by key. Used for compensating cleanup.
	Remove(ctx context.Context, bucket string, keys []string) error
}
