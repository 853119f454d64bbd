// Package catalog persists and queries the movie catalog backed by SQLite.
//
// The catalog is written once during ingest and read by every other
// component: exact/partial/fuzzy title lookups, genre and keyword candidate
// expansion, and user-rating joins for interest aggregation. Query helpers
// return nil (not an error) when no row matches; errors always indicate a
// store problem.
package catalog
