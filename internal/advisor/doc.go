// Package advisor resolves free-text movie titles against the catalog and
// ranks similar movies.
//
// Resolution tries exact title equality, then substring containment, then a
// fuzzy similarity pass over every catalog title. A query that resolves to
// nothing is a normal outcome and yields empty results, never an error;
// errors always mean the catalog store itself failed.
//
// Recommendations expand the resolved movie into genre-overlap and
// keyword-overlap candidate sets, merge them keyed by title (keyword
// candidates win collisions), and rank by final score with a title tie-break.
package advisor
