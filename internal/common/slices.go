package common

// Pairs splits s into consecutive pairs. A trailing odd element is returned
// separately with true.
func Pairs[S ~[]E, E any](s S) ([][2]E, E, bool) {
	res := make([][2]E, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		res = append(res, [2]E{s[i], s[i+1]})
	}

	if len(s)%2 == 1 {
		return res, s[len(s)-1], true
	}

	var zero E

	return res, zero, false
}
