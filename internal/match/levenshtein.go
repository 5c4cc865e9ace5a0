package match

import "strings"

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-byte insertions, deletions or substitutions turning one
// into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	if a == b || len(a) == 0 {
		return len(b) - len(a)
	}

	// Two rows of the matrix, indexed by position in the shorter string.
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			subst := prev[i-1]
			if a[i-1] != b[j-1] {
				subst++
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, subst)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// normalizeName lowercases a category name and drops separators so that
// "Water_Light" and "water-light" compare equal.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}

		return r
	}, strings.ToLower(s))
}
