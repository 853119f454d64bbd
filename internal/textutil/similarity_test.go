package textutil_test

import (
	"testing"

	"cinematch/internal/textutil"
)

func TestSimilarityRatioIdentical(t *testing.T) {
	if got := textutil.SimilarityRatio("inception", "inception"); got != 1 {
		t.Fatalf("expected ratio 1 for identical strings, got %f", got)
	}
}

func TestSimilarityRatioEmpty(t *testing.T) {
	if got := textutil.SimilarityRatio("", ""); got != 1 {
		t.Fatalf("expected ratio 1 for two empty strings, got %f", got)
	}
	if got := textutil.SimilarityRatio("inception", ""); got != 0 {
		t.Fatalf("expected ratio 0 against empty string, got %f", got)
	}
}

func TestSimilarityRatioTransposition(t *testing.T) {
	// A transposed pair near the end should still score well above the fuzzy
	// resolution threshold.
	got := textutil.SimilarityRatio("inceptoin", "inception")
	want := 2 * 8.0 / 18.0
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected ratio %f, got %f", want, got)
	}
	if got <= 0.6 {
		t.Fatalf("expected transposed title to clear 0.6 threshold, got %f", got)
	}
}

func TestSimilarityRatioDisjoint(t *testing.T) {
	if got := textutil.SimilarityRatio("abc", "xyz"); got != 0 {
		t.Fatalf("expected ratio 0 for disjoint strings, got %f", got)
	}
}

func TestSimilarityRatioSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"interstellar", "instellar"},
		{"the notebook", "notebook"},
		{"heat", "heist"},
	}
	for _, pair := range pairs {
		ab := textutil.SimilarityRatio(pair[0], pair[1])
		ba := textutil.SimilarityRatio(pair[1], pair[0])
		if diff := ab - ba; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("ratio not symmetric for %q/%q: %f vs %f", pair[0], pair[1], ab, ba)
		}
		if ab <= 0 || ab >= 1 {
			t.Fatalf("expected ratio in (0,1) for %q/%q, got %f", pair[0], pair[1], ab)
		}
	}
}
