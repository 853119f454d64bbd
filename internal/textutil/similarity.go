package textutil

// SimilarityRatio computes a normalized similarity ratio between two strings
// using longest-matching-block decomposition (Ratcliff/Obershelp). The result
// ranges from 0 (no shared characters) to 1 (identical). Comparison is
// case-sensitive; callers normalize case beforehand.
func SimilarityRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	matched := matchingRunes(ra, rb)
	return 2 * float64(matched) / float64(total)
}

// matchingRunes counts runes covered by the recursive longest-common-substring
// decomposition of a and b.
func matchingRunes(a, b []rune) int {
	i, j, k := longestMatch(a, b)
	if k == 0 {
		return 0
	}
	return matchingRunes(a[:i], b[:j]) + k + matchingRunes(a[i+k:], b[j+k:])
}

// longestMatch finds the leftmost longest common substring of a and b,
// returning its start offsets and length.
func longestMatch(a, b []rune) (bestA, bestB, bestLen int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// j2len[j] holds the length of the common run ending at a[i], b[j].
	j2len := make(map[int]int, len(b))
	for i, ra := range a {
		next := make(map[int]int, len(b))
		for j, rb := range b {
			if ra != rb {
				continue
			}
			run := j2len[j-1] + 1
			next[j] = run
			if run > bestLen {
				bestA = i - run + 1
				bestB = j - run + 1
				bestLen = run
			}
		}
		j2len = next
	}
	return bestA, bestB, bestLen
}
