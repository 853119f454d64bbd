package catalog

import "errors"

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// ErrClosed indicates an operation was attempted on a closed store.
var ErrClosed = errors.New("catalog store is closed")
