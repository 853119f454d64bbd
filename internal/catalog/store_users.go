package catalog

import (
	"context"
	"fmt"
)

// AddRating records one user rating for a movie.
func (s *Store) AddRating(ctx context.Context, userID, movieID int64, rate float64, liked bool) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO users_data (user_id, movie_id, user_rate, liked) VALUES (?, ?, ?, ?)`,
		userID,
		movieID,
		rate,
		boolToInt(liked),
	)
	if err != nil {
		return fmt.Errorf("insert rating: %w", err)
	}
	return nil
}

// UserRatings returns the user's ratings joined with the rated movies' tag
// fields, highest rate first.
func (s *Store) UserRatings(ctx context.Context, userID int64) ([]UserRating, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT ud.user_id, ud.movie_id, COALESCE(ud.user_rate, 0), ud.liked,
                COALESCE(m.genres, ''), COALESCE(m.keywords, '')
         FROM users_data ud
         JOIN movies m ON ud.movie_id = m.id
         WHERE ud.user_id = ?
         ORDER BY ud.user_rate DESC, ud.movie_id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query user ratings: %w", err)
	}
	defer rows.Close()

	var ratings []UserRating
	for rows.Next() {
		var r UserRating
		var liked int64
		if err := rows.Scan(&r.UserID, &r.MovieID, &r.UserRate, &liked, &r.Genres, &r.Keywords); err != nil {
			return nil, err
		}
		r.Liked = liked != 0
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}

// WatchedMovieIDs returns the ids of movies the user has rated.
func (s *Store) WatchedMovieIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT movie_id FROM users_data WHERE user_id = ? ORDER BY movie_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query watched movies: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
