package almanac

import (
	"errors"
	"fmt"
	"slices"

	"rangefold/internal/diagnostic"
	"rangefold/internal/match"
	"rangefold/internal/rangemap"
)

// maxSuggestDistance bounds the edit distance of category suggestions.
const maxSuggestDistance = 2

// SeedMode selects how the seed numbers of an almanac are read.
type SeedMode int

const (
	// ModeRanges reads the seeds as (start, length) pairs.
	ModeRanges SeedMode = iota
	// ModeValues reads every seed as a single value.
	ModeValues
)

// Validate checks an almanac against the domain d, reading the seeds as
// mode says, and reports every problem found. It does not build any map.
func Validate(a *Almanac, d rangemap.Domain, mode SeedMode) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if a == nil {
		res.AddError("almanac_is_nil", "almanac is nil", "", "")
		return res
	}

	if err := d.Validate(); err != nil {
		res.AddError("invalid_domain", err.Error(), "", "")
		return res
	}

	validateSeeds(res, a, d, mode)

	if len(a.Stages) == 0 {
		res.AddError("no_stages", "almanac has no stages", "", "")
		return res
	}

	seen := map[string]struct{}{}

	for i := range a.Stages {
		sec := &a.Stages[i]
		name := sec.Name()

		if sec.From == "" || sec.To == "" {
			res.AddWarning("unnamed_stage", fmt.Sprintf("stage %d has no category name", i+1), name, "")
		}

		if _, ok := seen[name]; ok {
			res.AddWarning("duplicate_stage", fmt.Sprintf("stage %q is defined more than once", name), name, "")
		}

		seen[name] = struct{}{}

		if i > 0 {
			validateChain(res, a, i)
		}

		validateRules(res, sec, d)
	}

	return res
}

func validateSeeds(res *diagnostic.Diagnostics, a *Almanac, d rangemap.Domain, mode SeedMode) {
	if len(a.Seeds) == 0 {
		res.AddError("no_seeds", "almanac has no seeds", "", "seeds")
		return
	}

	if mode == ModeRanges && len(a.Seeds)%2 == 1 {
		res.AddWarning("odd_seed_count",
			fmt.Sprintf("%d seed numbers cannot be read as ranges, only single values can be used", len(a.Seeds)), "", "seeds")
	}

	if mode == ModeValues || len(a.Seeds)%2 == 1 {
		validateSeedValues(res, a, d)
		return
	}

	validateSeedRanges(res, a, d)
}

func validateSeedValues(res *diagnostic.Diagnostics, a *Almanac, d rangemap.Domain) {
	for i, s := range a.Seeds {
		if !d.Interval().Contains(s) {
			res.AddError("seed_outside_domain", fmt.Sprintf("seed %d is outside %s", s, d), "", fmt.Sprintf("seed %d", i+1))
		}
	}
}

func validateSeedRanges(res *diagnostic.Diagnostics, a *Almanac, d rangemap.Domain) {

	ranges, err := a.SeedIntervals()
	if err != nil {
		res.AddError("invalid_seed_range", err.Error(), "", "seeds")
		return
	}

	for i, r := range ranges {
		loc := fmt.Sprintf("seed range %d", i+1)

		switch {
		case r.IsEmpty():
			res.AddError("seed_length_not_positive", fmt.Sprintf("seed range %s has no values", r), "", loc)
		case r.Start < 0 || r.End > d.Max:
			res.AddError("seed_outside_domain", fmt.Sprintf("seed range %s exceeds %s", r, d), "", loc)
		}
	}

	if res.HasErrors() {
		return
	}

	if m, err := rangemap.NewSeedMap(d, ranges); err == nil && m.Len() < len(ranges) {
		res.AddInfo("seed_ranges_merged",
			fmt.Sprintf("%d seed ranges overlap or touch and are read as %d", len(ranges), m.Len()), "", "seeds")
	}
}

// validateChain checks that stage i reads the category stage i-1 produces.
func validateChain(res *diagnostic.Diagnostics, a *Almanac, i int) {
	prev, cur := a.Stages[i-1], a.Stages[i]
	if prev.To == cur.From {
		return
	}

	known := make([]string, 0, 2*len(a.Stages))
	for _, sec := range a.Stages {
		known = append(known, sec.From, sec.To)
	}

	res.AddWarning("chain_broken",
		fmt.Sprintf("stage reads %q but the previous stage produces %q", cur.From, prev.To),
		cur.Name(), "from",
		match.Suggest(cur.From, known, maxSuggestDistance)...)
}

func validateRules(res *diagnostic.Diagnostics, sec *Section, d rangemap.Domain) {
	name := sec.Name()

	if len(sec.Rules) == 0 {
		res.AddError("empty_stage", "stage has no rules", name, "")
		return
	}

	type indexed struct {
		pos  int
		rule rangemap.Rule
	}

	valid := make([]indexed, 0, len(sec.Rules))

	for i, t := range sec.Rules {
		loc := fmt.Sprintf("rule %d", i+1)

		r, err := t.Rule()
		if err != nil {
			res.AddError(ruleErrorCode(err), err.Error(), name, loc)
			continue
		}

		if r.Source.End > d.Max || r.Destination.End > d.Max {
			res.AddError("rule_outside_domain", fmt.Sprintf("rule %s exceeds %s", r, d), name, loc)
			continue
		}

		valid = append(valid, indexed{pos: i, rule: r})
	}

	slices.SortFunc(valid, func(a, b indexed) int {
		switch {
		case a.rule.Source.Start < b.rule.Source.Start:
			return -1
		case a.rule.Source.Start > b.rule.Source.Start:
			return 1
		default:
			return a.pos - b.pos
		}
	})

	// widest is the rule reaching furthest among those before cur.
	var widest indexed

	for i, cur := range valid {
		if i > 0 {
			if _, ok := widest.rule.Source.Overlap(cur.rule.Source); ok {
				res.AddError("overlapping_rules",
					fmt.Sprintf("source %s overlaps source %s of rule %d", cur.rule.Source, widest.rule.Source, widest.pos+1),
					name, fmt.Sprintf("rule %d", cur.pos+1))
			}
		}

		if i == 0 || cur.rule.Source.End > widest.rule.Source.End {
			widest = cur
		}
	}
}

func ruleErrorCode(err error) string {
	switch {
	case errors.Is(err, rangemap.ErrMalformedRule):
		return "rule_length_not_positive"
	case errors.Is(err, rangemap.ErrDomainOverflow):
		return "rule_outside_domain"
	default:
		return "invalid_rule"
	}
}
