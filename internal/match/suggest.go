package match

import (
	"slices"
)

// Suggest returns the known names within maxDistance edits of name, closest
// first. Names equal to name after normalization are not suggested.
func Suggest(name string, known []string, maxDistance int) []string {
	type candidate struct {
		name     string
		distance int
	}

	norm := normalizeName(name)

	var found []candidate

	for _, k := range known {
		dist := Levenshtein(norm, normalizeName(k))
		if dist == 0 || dist > maxDistance {
			continue
		}

		if slices.ContainsFunc(found, func(c candidate) bool { return c.name == k }) {
			continue
		}

		found = append(found, candidate{name: k, distance: dist})
	}

	slices.SortStableFunc(found, func(a, b candidate) int {
		return a.distance - b.distance
	})

	res := make([]string, 0, len(found))
	for _, c := range found {
		res = append(res, c.name)
	}

	return res
}
