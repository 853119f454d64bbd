package scraper

import (
	"math"
	"testing"

	"cinematch/internal/catalog"
)

func TestApplyFinalScoresPullsLowVoteRatingsTowardMean(t *testing.T) {
	movies := []catalog.Movie{
		{Title: "Blockbuster", Rating: 9.0, RatingCount: 2000000},
		{Title: "Obscure Gem", Rating: 9.0, RatingCount: 500},
		{Title: "Filler", Rating: 5.0, RatingCount: 2000000},
	}
	ApplyFinalScores(movies)

	// With the batch mean below 9.0, the thin vote count drags the gem's
	// score down while the blockbuster holds near its rating.
	if movies[0].FinalScore <= movies[1].FinalScore {
		t.Fatalf("expected vote count to separate equal ratings: %v vs %v",
			movies[0].FinalScore, movies[1].FinalScore)
	}

	mean := (9.0 + 9.0 + 5.0) / 3
	votes := 2000000.0
	want := (votes/(votes+minVotesForFullWeight))*9.0 + (minVotesForFullWeight/(votes+minVotesForFullWeight))*mean
	if math.Abs(movies[0].FinalScore-want) > 1e-9 {
		t.Fatalf("final score = %v, want %v", movies[0].FinalScore, want)
	}
}

func TestApplyFinalScoresMixedRatings(t *testing.T) {
	movies := []catalog.Movie{
		{Title: "High Votes High Rating", Rating: 9.0, RatingCount: 1000000},
		{Title: "Few Votes High Rating", Rating: 9.0, RatingCount: 100},
		{Title: "High Votes Low Rating", Rating: 6.0, RatingCount: 1000000},
	}
	ApplyFinalScores(movies)

	// mean = 8.0; the thin rating should land near the mean, the heavy ones
	// near their own ratings.
	if movies[1].FinalScore > 8.1 || movies[1].FinalScore < 7.9 {
		t.Fatalf("low-vote score should sit near the mean, got %v", movies[1].FinalScore)
	}
	if movies[0].FinalScore < 8.9 {
		t.Fatalf("high-vote high rating should stay near 9.0, got %v", movies[0].FinalScore)
	}
	if movies[2].FinalScore > 6.1 {
		t.Fatalf("high-vote low rating should stay near 6.0, got %v", movies[2].FinalScore)
	}
}

func TestApplyFinalScoresUnratedBatch(t *testing.T) {
	movies := []catalog.Movie{{Title: "No Rating"}}
	ApplyFinalScores(movies)
	if movies[0].FinalScore != 0 {
		t.Fatalf("expected zero score for unrated batch, got %v", movies[0].FinalScore)
	}
}

func TestApplyFinalScoresZeroVotesUsesRawRating(t *testing.T) {
	movies := []catalog.Movie{
		{Title: "Rated", Rating: 7.5, RatingCount: 0},
		{Title: "Anchor", Rating: 8.5, RatingCount: 50000},
	}
	ApplyFinalScores(movies)
	if movies[0].FinalScore != 7.5 {
		t.Fatalf("expected raw rating for zero votes, got %v", movies[0].FinalScore)
	}
}
