package almanac

import (
	"fmt"

	"rangefold/internal/common"
	"rangefold/internal/pipeline"
	"rangefold/internal/rangemap"
)

// SeedIntervals reads the seed numbers as (start, length) pairs.
func (a *Almanac) SeedIntervals() ([]rangemap.Interval, error) {
	pairs, rest, odd := common.Pairs(a.Seeds)
	if odd {
		return nil, fmt.Errorf("seed %d has no length", rest)
	}

	res := make([]rangemap.Interval, 0, len(pairs))

	for _, p := range pairs {
		start, length := p[0], p[1]
		if length < 0 || start > rangemap.MaxID-length {
			return nil, fmt.Errorf("seed range %d+%d: %w", start, length, rangemap.ErrDomainOverflow)
		}

		res = append(res, rangemap.NewInterval(start, length))
	}

	return res, nil
}

// SeedValues reads the seed numbers as individual values.
func (a *Almanac) SeedValues() []rangemap.ID {
	return append([]rangemap.ID(nil), a.Seeds...)
}

// BuildStages builds the total map of every stage over d.
func (a *Almanac) BuildStages(d rangemap.Domain) ([]pipeline.Stage, error) {
	res := make([]pipeline.Stage, 0, len(a.Stages))

	for _, sec := range a.Stages {
		rules := make([]rangemap.Rule, 0, len(sec.Rules))

		for i, t := range sec.Rules {
			r, err := t.Rule()
			if err != nil {
				return nil, fmt.Errorf("stage %s rule %d: %w", sec.Name(), i+1, err)
			}

			rules = append(rules, r)
		}

		m, err := rangemap.NewTotal(d, rules)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", sec.Name(), err)
		}

		res = append(res, pipeline.Stage{Name: sec.Name(), Map: m})
	}

	return res, nil
}
