package rangemap

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

const smallBound ID = 32

var smallDomain = Domain{Max: smallBound}

// randomRules returns shuffled sparse rules with disjoint sources inside
// [0, bound). Destinations are random and may overlap each other.
func randomRules(rng *rand.Rand, bound ID) []Rule {
	var rules []Rule

	for start := ID(0); start < bound; {
		length := min(ID(rng.Intn(6)+1), bound-start)

		if rng.Intn(2) == 0 {
			dest := rng.Int63n(bound - length + 1)
			rules = append(rules, rule(start, dest, length))
		}

		start += length + ID(rng.Intn(3))
	}

	rng.Shuffle(len(rules), func(i, j int) {
		rules[i], rules[j] = rules[j], rules[i]
	})

	return rules
}

// bruteApply maps v through sparse rules, falling back to identity.
func bruteApply(rules []Rule, v ID) ID {
	for _, r := range rules {
		if r.Source.Contains(v) {
			return v + r.Offset()
		}
	}

	return v
}

func mustTotal(t *testing.T, d Domain, rules ...Rule) *Map {
	t.Helper()

	m, err := NewTotal(d, rules)
	require.NoError(t, err)

	return m
}

func requireTotal(t *testing.T, m *Map) {
	t.Helper()

	rules := m.Rules()
	require.NotEmpty(t, rules)
	require.Equal(t, ID(0), rules[0].Source.Start, spew.Sdump(rules))
	require.Equal(t, m.Domain().Max, rules[len(rules)-1].Source.End, spew.Sdump(rules))

	for i := 1; i < len(rules); i++ {
		require.Equal(t, rules[i-1].Source.End, rules[i].Source.Start, spew.Sdump(rules))
	}

	require.True(t, m.IsTotal())
}
