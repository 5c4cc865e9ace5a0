package rangemap

import (
	"fmt"
	"sort"
)

// Then returns the map v -> next(m(v)).
//
// m is the accumulated map whose destinations are matched and next the stage
// whose sources are matched. The result covers the values of m whose image
// is covered by next; when next is total that is all of m's sources. The
// rules are ordered by source start.
func (m *Map) Then(next *Map) (*Map, error) {
	if m.domain != next.domain {
		return nil, fmt.Errorf("%w: %s then %s", ErrDomainMismatch, m.domain, next.domain)
	}

	res := make([]Rule, 0, len(m.rules)+len(next.rules))

	for _, r := range m.rules {
		// next's sources are disjoint and sorted, so their ends are sorted too.
		i := sort.Search(len(next.rules), func(i int) bool {
			return next.rules[i].Source.End > r.Destination.Start
		})

		for ; i < len(next.rules) && next.rules[i].Source.Start < r.Destination.End; i++ {
			if merged, ok := r.Chain(next.rules[i]); ok {
				res = append(res, merged)
			}
		}
	}

	return &Map{domain: m.domain, rules: res}, nil
}

// ComposeAll folds the maps left to right: the result applies first, then
// each of rest in order.
func ComposeAll(first *Map, rest ...*Map) (*Map, error) {
	acc := first

	for i, next := range rest {
		composed, err := acc.Then(next)
		if err != nil {
			return nil, fmt.Errorf("failed to compose map %d: %w", i+1, err)
		}

		acc = composed
	}

	return acc, nil
}
