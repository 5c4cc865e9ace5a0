package rangemap

import (
	"slices"
)

// NewTotal builds a total map from sparse rules.
//
// The rules may come in any order but their sources must be pairwise
// disjoint and inside d. Every value of d not covered by a rule is mapped to
// itself, including everything above the highest rule.
func NewTotal(d Domain, rules []Rule) (*Map, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	idx := newRuleIndex()

	for _, r := range rules {
		if err := checkRule(d, r); err != nil {
			return nil, err
		}

		if conflict, ok := idx.insert(r); ok {
			return nil, &MalformedRuleError{Rule: r, Conflict: &conflict, Reason: "source overlaps"}
		}
	}

	sorted := idx.sorted()
	res := make([]Rule, 0, 2*len(sorted)+1)

	var next ID

	for _, r := range sorted {
		if r.Source.Start > next {
			res = append(res, Identity(Interval{Start: next, End: r.Source.Start}))
		}

		res = append(res, r)
		next = r.Source.End
	}

	if next < d.Max {
		res = append(res, Identity(Interval{Start: next, End: d.Max}))
	}

	return &Map{domain: d, rules: res}, nil
}

// NewSeedMap builds the map sending every seed interval to itself.
//
// Overlapping or touching seeds are joined. Values outside the seeds are
// left uncovered: composing the seed map with later stages only follows the
// seeds.
func NewSeedMap(d Domain, seeds []Interval) (*Map, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	sorted := make([]Interval, 0, len(seeds))

	for _, s := range seeds {
		if s.IsEmpty() {
			return nil, &MalformedRuleError{Rule: Identity(s), Reason: "empty seed interval"}
		}

		if err := d.check(s); err != nil {
			return nil, err
		}

		sorted = append(sorted, s)
	}

	slices.SortFunc(sorted, func(a, b Interval) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		default:
			return 0
		}
	})

	res := make([]Rule, 0, len(sorted))

	for _, s := range sorted {
		if n := len(res); n > 0 && s.Start <= res[n-1].Source.End {
			res[n-1] = Identity(Interval{Start: res[n-1].Source.Start, End: max(s.End, res[n-1].Source.End)})
			continue
		}

		res = append(res, Identity(s))
	}

	return &Map{domain: d, rules: res}, nil
}

func checkRule(d Domain, r Rule) error {
	if r.Source.IsEmpty() {
		return &MalformedRuleError{Rule: r, Reason: "empty source"}
	}

	if r.Source.Len() != r.Destination.Len() {
		return &MalformedRuleError{Rule: r, Reason: "source and destination lengths differ"}
	}

	if err := d.check(r.Source); err != nil {
		return err
	}

	return d.check(r.Destination)
}
