package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"cinematch/internal/catalog"
)

// MoviePayload is the wire shape of a catalog movie.
type MoviePayload struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year,omitempty"`
	Genres      string  `json:"genres,omitempty"`
	Director    string  `json:"director,omitempty"`
	Stars       string  `json:"stars,omitempty"`
	Keywords    string  `json:"keywords,omitempty"`
	Rating      float64 `json:"rating"`
	RatingCount int64   `json:"rating_count"`
	FinalScore  float64 `json:"final_score"`
}

// RecommendResponse carries the ranked results for one query.
type RecommendResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []MoviePayload `json:"results"`
}

// SearchResponse carries title-search results.
type SearchResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []MoviePayload `json:"results"`
}

// InterestsResponse carries a user's derived tag profile.
type InterestsResponse struct {
	UserID   int64    `json:"user_id"`
	Genres   []string `json:"genres"`
	Keywords []string `json:"keywords"`
	Fallback bool     `json:"fallback"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health, err := s.store.CheckHealth(r.Context())
	if err != nil || !health.DatabaseReadable || !health.TableExists {
		s.writeError(w, http.StatusServiceUnavailable, "catalog unavailable")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"movies": health.TotalMovies,
	})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		s.writeError(w, http.StatusBadRequest, "query parameter required")
		return
	}
	limit, ok := s.parseLimit(w, r)
	if !ok {
		return
	}

	movies, err := s.advisor.Recommend(r.Context(), query, limit)
	if err != nil {
		s.logger.Error("recommendation failed",
			slog.String("query", query), slog.String("error", err.Error()))
		s.writeError(w, http.StatusInternalServerError, "recommendation failed")
		return
	}
	s.writeJSON(w, http.StatusOK, RecommendResponse{
		Query:   query,
		Count:   len(movies),
		Results: toPayloads(movies),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		s.writeError(w, http.StatusBadRequest, "query parameter required")
		return
	}
	limit, ok := s.parseLimit(w, r)
	if !ok {
		return
	}

	movies, err := s.store.SearchByTitle(r.Context(), query, limit)
	if err != nil {
		s.logger.Error("search failed",
			slog.String("query", query), slog.String("error", err.Error()))
		s.writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	s.writeJSON(w, http.StatusOK, SearchResponse{
		Query:   query,
		Count:   len(movies),
		Results: toPayloads(movies),
	})
}

func (s *Server) handleInterests(w http.ResponseWriter, r *http.Request) {
	userValue := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userValue == "" {
		s.writeError(w, http.StatusBadRequest, "user_id parameter required")
		return
	}
	userID, err := strconv.ParseInt(userValue, 10, 64)
	if err != nil || userID <= 0 {
		s.writeError(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	profile, err := s.finder.Find(r.Context(), userID)
	if err != nil {
		s.logger.Error("interest lookup failed",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		s.writeError(w, http.StatusInternalServerError, "interest lookup failed")
		return
	}
	s.writeJSON(w, http.StatusOK, InterestsResponse{
		UserID:   userID,
		Genres:   profile.Genres,
		Keywords: profile.Keywords,
		Fallback: profile.Fallback,
	})
}

func (s *Server) parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	value := strings.TrimSpace(r.URL.Query().Get("limit"))
	if value == "" {
		return s.defaultLimit, true
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit <= 0 {
		s.writeError(w, http.StatusBadRequest, "invalid limit")
		return 0, false
	}
	return limit, true
}

func toPayloads(movies []catalog.Movie) []MoviePayload {
	payloads := make([]MoviePayload, 0, len(movies))
	for _, movie := range movies {
		payloads = append(payloads, MoviePayload{
			ID:          movie.ID,
			Title:       movie.Title,
			ReleaseYear: movie.ReleaseYear,
			Genres:      movie.Genres,
			Director:    movie.Director,
			Stars:       movie.Stars,
			Keywords:    movie.Keywords,
			Rating:      movie.Rating,
			RatingCount: movie.RatingCount,
			FinalScore:  movie.FinalScore,
		})
	}
	return payloads
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
