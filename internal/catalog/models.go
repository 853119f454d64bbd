package catalog

// Movie is a single catalog record. Genres and Keywords are comma-separated
// free-text tag fields; FinalScore is a precomputed popularity/quality blend
// used as the ranking key everywhere.
type Movie struct {
	ID          int64
	Title       string
	ReleaseYear int
	Genres      string
	Director    string
	Stars       string
	Keywords    string
	Rating      float64
	RatingCount int64
	FinalScore  float64
}

// UserRating joins one users_data row with the rated movie's tag fields.
type UserRating struct {
	UserID   int64
	MovieID  int64
	UserRate float64
	Liked    bool
	Genres   string
	Keywords string
}

// Stats summarizes catalog contents for diagnostics and CLI output.
type Stats struct {
	Movies        int
	Ratings       int
	AverageRating float64
	TopTitle      string
}

// DatabaseHealth reports diagnostic information about the catalog database.
type DatabaseHealth struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	TableExists      bool
	TotalMovies      int
	IntegrityCheck   bool
	Error            string
}
