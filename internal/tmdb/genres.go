package tmdb

import "strings"

// movieGenres maps TMDB movie genre IDs to their display names. The list is
// stable enough to keep inline rather than fetch from /genre/movie/list on
// every run.
var movieGenres = map[int64]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Sci-Fi",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// GenreNames converts TMDB genre IDs into a comma-separated display string.
// Unknown IDs are skipped.
func GenreNames(ids []int64) string {
	var names []string
	for _, id := range ids {
		if name, ok := movieGenres[id]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}
