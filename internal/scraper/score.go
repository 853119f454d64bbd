package scraper

import "cinematch/internal/catalog"

// minVotesForFullWeight is the vote count at which a movie's own rating and
// the catalog-wide mean contribute equally to its final score.
const minVotesForFullWeight = 25000

// ApplyFinalScores computes each movie's ranking score as a weighted blend of
// its rating and the batch mean, pulled toward the mean when the vote count
// is low. Movies with no votes score the raw rating.
func ApplyFinalScores(movies []catalog.Movie) {
	if len(movies) == 0 {
		return
	}

	var sum float64
	var rated int
	for _, movie := range movies {
		if movie.Rating > 0 {
			sum += movie.Rating
			rated++
		}
	}
	if rated == 0 {
		return
	}
	mean := sum / float64(rated)

	for i := range movies {
		movie := &movies[i]
		if movie.RatingCount <= 0 {
			movie.FinalScore = movie.Rating
			continue
		}
		votes := float64(movie.RatingCount)
		movie.FinalScore = (votes/(votes+minVotesForFullWeight))*movie.Rating +
			(minVotesForFullWeight/(votes+minVotesForFullWeight))*mean
	}
}
