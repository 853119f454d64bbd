package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

const movieColumns = "id, title, release_year, genres, director, stars, keywords, rating, rating_count, final_score"

// orderByScore keeps candidate and listing order deterministic: ties on
// final_score fall back to title.
const orderByScore = " ORDER BY final_score DESC, title COLLATE NOCASE ASC"

// AddMovie inserts a single movie, ignoring duplicates on (title, release_year).
// Returns true when a new row was written.
func (s *Store) AddMovie(ctx context.Context, movie Movie) (bool, error) {
	if strings.TrimSpace(movie.Title) == "" {
		return false, errors.New("movie title is required")
	}
	res, err := s.db.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO movies
            (title, release_year, genres, director, stars, keywords, rating, rating_count, final_score)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		movie.Title,
		nullableYear(movie.ReleaseYear),
		nullableString(movie.Genres),
		nullableString(movie.Director),
		nullableString(movie.Stars),
		nullableString(movie.Keywords),
		movie.Rating,
		movie.RatingCount,
		movie.FinalScore,
	)
	if err != nil {
		return false, fmt.Errorf("insert movie: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// AddMovies inserts a batch of movies, skipping duplicates and empty titles.
// Returns the count of newly written rows.
func (s *Store) AddMovies(ctx context.Context, movies []Movie) (int, error) {
	added := 0
	for _, movie := range movies {
		if strings.TrimSpace(movie.Title) == "" {
			continue
		}
		ok, err := s.AddMovie(ctx, movie)
		if err != nil {
			return added, fmt.Errorf("add movie %q: %w", movie.Title, err)
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// GetByTitle returns the first movie whose title matches exactly,
// case-insensitively. Returns nil when no row matches.
func (s *Store) GetByTitle(ctx context.Context, title string) (*Movie, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+movieColumns+` FROM movies WHERE LOWER(title) = LOWER(?) LIMIT 1`,
		title,
	)
	movie, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get movie by title: %w", err)
	}
	return movie, nil
}

// GetByPartialTitle returns the first movie whose title contains the query as
// a case-insensitive substring. Returns nil when no row matches.
func (s *Store) GetByPartialTitle(ctx context.Context, title string) (*Movie, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+movieColumns+` FROM movies WHERE LOWER(title) LIKE LOWER(?)`+orderByScore+` LIMIT 1`,
		"%"+title+"%",
	)
	movie, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get movie by partial title: %w", err)
	}
	return movie, nil
}

// SearchByTitle lists movies whose titles contain the query as a
// case-insensitive substring, best rated first.
func (s *Store) SearchByTitle(ctx context.Context, title string, limit int) ([]Movie, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+movieColumns+` FROM movies WHERE LOWER(title) LIKE LOWER(?)
         ORDER BY rating DESC, title COLLATE NOCASE ASC LIMIT ?`,
		"%"+title+"%",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search by title: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

// List returns every movie ordered by final score then title.
func (s *Store) List(ctx context.Context) ([]Movie, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+movieColumns+` FROM movies`+orderByScore)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

// TopMovies returns the highest scored movies in the catalog.
func (s *Store) TopMovies(ctx context.Context, limit int) ([]Movie, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+movieColumns+` FROM movies`+orderByScore+` LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top movies: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

// SimilarByGenres lists movies whose genre field contains any of the given
// tags as a case-insensitive substring, excluding one title, best score first.
// An empty tag set yields no candidates.
func (s *Store) SimilarByGenres(ctx context.Context, tags []string, excludeTitle string, limit int) ([]Movie, error) {
	return s.similarByTags(ctx, "genres", tags, excludeTitle, limit)
}

// SimilarByKeywords is SimilarByGenres over the keywords field.
func (s *Store) SimilarByKeywords(ctx context.Context, tags []string, excludeTitle string, limit int) ([]Movie, error) {
	return s.similarByTags(ctx, "keywords", tags, excludeTitle, limit)
}

func (s *Store) similarByTags(ctx context.Context, column string, tags []string, excludeTitle string, limit int) ([]Movie, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	conditions := make([]string, len(tags))
	args := make([]any, 0, len(tags)+2)
	args = append(args, excludeTitle)
	for i, tag := range tags {
		conditions[i] = "LOWER(" + column + ") LIKE ?"
		args = append(args, "%"+strings.ToLower(tag)+"%")
	}
	args = append(args, limit)

	query := `SELECT ` + movieColumns + ` FROM movies
        WHERE LOWER(title) != LOWER(?)
        AND (` + strings.Join(conditions, " OR ") + `)` + orderByScore + ` LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("similar by %s: %w", column, err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

func collectMovies(rows *sql.Rows) ([]Movie, error) {
	var movies []Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *movie)
	}
	return movies, rows.Err()
}

func scanMovie(scanner interface{ Scan(dest ...any) error }) (*Movie, error) {
	var (
		id          int64
		title       string
		releaseYear sql.NullInt64
		genres      sql.NullString
		director    sql.NullString
		stars       sql.NullString
		keywords    sql.NullString
		rating      sql.NullFloat64
		ratingCount sql.NullInt64
		finalScore  sql.NullFloat64
	)

	if err := scanner.Scan(
		&id,
		&title,
		&releaseYear,
		&genres,
		&director,
		&stars,
		&keywords,
		&rating,
		&ratingCount,
		&finalScore,
	); err != nil {
		return nil, err
	}

	return &Movie{
		ID:          id,
		Title:       title,
		ReleaseYear: int(releaseYear.Int64),
		Genres:      genres.String,
		Director:    director.String,
		Stars:       stars.String,
		Keywords:    keywords.String,
		Rating:      rating.Float64,
		RatingCount: ratingCount.Int64,
		FinalScore:  finalScore.Float64,
	}, nil
}
