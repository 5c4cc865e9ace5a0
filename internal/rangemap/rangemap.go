package rangemap

import (
	"slices"
	"sort"
	"strings"
)

// Map is an immutable list of rules ordered by source start, with pairwise
// disjoint sources. See NewTotal and NewSeedMap.
type Map struct {
	domain Domain
	rules  []Rule
}

// IdentityMap returns the total map sending every value of d to itself.
func IdentityMap(d Domain) *Map {
	return &Map{domain: d, rules: []Rule{Identity(d.Interval())}}
}

// Domain returns the domain the map was built for.
func (m *Map) Domain() Domain {
	return m.domain
}

// Len returns the number of rules.
func (m *Map) Len() int {
	return len(m.rules)
}

// Rules returns a copy of the rules, ordered by source start.
func (m *Map) Rules() []Rule {
	return slices.Clone(m.rules)
}

// Apply maps v. false is returned if no rule covers v, which never happens
// for a total map and a v inside its domain.
func (m *Map) Apply(v ID) (ID, bool) {
	i := m.find(v)
	if i < 0 {
		return 0, false
	}

	res, err := m.rules[i].Translate(v)
	if err != nil {
		return 0, false
	}

	return res, true
}

// find returns the index of the rule whose source contains v, or -1.
func (m *Map) find(v ID) int {
	i := sort.Search(len(m.rules), func(i int) bool {
		return m.rules[i].Source.End > v
	})
	if i < len(m.rules) && m.rules[i].Source.Contains(v) {
		return i
	}

	return -1
}

// Coverage returns the source intervals of the map, with adjacent ones joined.
func (m *Map) Coverage() []Interval {
	var res []Interval

	for _, r := range m.rules {
		if n := len(res); n > 0 && res[n-1].End == r.Source.Start {
			res[n-1].End = r.Source.End
			continue
		}

		res = append(res, r.Source)
	}

	return res
}

// IsTotal reports whether the rules cover [0, Domain.Max) without gaps.
func (m *Map) IsTotal() bool {
	cov := m.Coverage()

	return len(cov) == 1 && cov[0] == m.domain.Interval()
}

// MinDestination returns the smallest value any rule maps to.
func (m *Map) MinDestination() (ID, bool) {
	if len(m.rules) == 0 {
		return 0, false
	}

	res := m.rules[0].Destination.Start
	for _, r := range m.rules[1:] {
		res = min(res, r.Destination.Start)
	}

	return res, true
}

// ByDestination returns a copy of the rules ordered by destination start.
func (m *Map) ByDestination() []Rule {
	res := m.Rules()
	slices.SortStableFunc(res, func(a, b Rule) int {
		switch {
		case a.Destination.Start < b.Destination.Start:
			return -1
		case a.Destination.Start > b.Destination.Start:
			return 1
		default:
			return 0
		}
	})

	return res
}

// Equal reports whether both maps have the same domain and rule boundaries.
func (m *Map) Equal(o *Map) bool {
	return m.domain == o.domain && slices.Equal(m.rules, o.rules)
}

// String lists one rule per line.
func (m *Map) String() string {
	var sb strings.Builder
	for i, r := range m.rules {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(r.String())
	}

	return sb.String()
}
