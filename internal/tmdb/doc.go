// Package tmdb implements a minimal client for The Movie Database API, used
// to enrich scraped catalog records with genres and keyword tags.
package tmdb
