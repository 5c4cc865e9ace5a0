package almanac

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangefold/internal/diagnostic"
	"rangefold/internal/rangemap"
)

func codes(ds []diagnostic.Diagnostic) []string {
	res := make([]string, 0, len(ds))
	for _, d := range ds {
		res = append(res, d.Code)
	}

	return res
}

func TestValidate_Sample(t *testing.T) {
	a, err := LoadFile(filepath.Join("testdata", "sample.txt"), FormatAuto)
	require.NoError(t, err)

	res := Validate(a, rangemap.DefaultDomain(), ModeRanges)
	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Problems(t *testing.T) {
	a := &Almanac{
		Seeds: []rangemap.ID{10, 0, 40, 5},
		Stages: []Section{
			{From: "seed", To: "soil", Rules: []Triple{
				{Dest: 0, Src: 0, Len: 5},
				{Dest: 10, Src: 3, Len: 4},
				{Dest: 1, Src: 20, Len: 0},
				{Dest: 30, Src: 25, Len: 10},
			}},
			{From: "sol", To: "water", Rules: []Triple{{Dest: 1, Src: 2, Len: 3}}},
			{From: "water", To: "light"},
			{From: "water", To: "light", Rules: []Triple{{Dest: 1, Src: 2, Len: 3}}},
		},
	}

	res := Validate(a, rangemap.Domain{Max: 32}, ModeRanges)

	assert.Equal(t, []string{
		"seed_length_not_positive",
		"seed_outside_domain",
		"rule_length_not_positive",
		"rule_outside_domain",
		"overlapping_rules",
		"empty_stage",
	}, codes(res.Errors))

	assert.Equal(t, []string{"chain_broken", "duplicate_stage", "chain_broken"}, codes(res.Warnings))

	chain := res.Warnings[0]
	assert.Equal(t, "sol-to-water", chain.Stage)
	assert.Equal(t, []string{"soil"}, chain.Suggestions)

	overlap := res.Errors[4]
	assert.Equal(t, "seed-to-soil", overlap.Stage)
	assert.Equal(t, "rule 2", overlap.Location)
}

func TestValidate_Empty(t *testing.T) {
	res := Validate(&Almanac{}, rangemap.DefaultDomain(), ModeRanges)
	assert.Equal(t, []string{"no_seeds", "no_stages"}, codes(res.Errors))

	res = Validate(nil, rangemap.DefaultDomain(), ModeRanges)
	assert.Equal(t, []string{"almanac_is_nil"}, codes(res.Errors))

	res = Validate(&Almanac{}, rangemap.Domain{}, ModeRanges)
	assert.Equal(t, []string{"invalid_domain"}, codes(res.Errors))
}

func TestValidate_OddSeeds(t *testing.T) {
	a := &Almanac{
		Seeds:  []rangemap.ID{1, 2, 3},
		Stages: []Section{{From: "a", To: "b", Rules: []Triple{{Dest: 1, Src: 2, Len: 3}}}},
	}

	res := Validate(a, rangemap.DefaultDomain(), ModeRanges)
	assert.True(t, res.IsValid())
	assert.Equal(t, []string{"odd_seed_count"}, codes(res.Warnings))
}

func TestValidate_MergedSeeds(t *testing.T) {
	a := &Almanac{
		Seeds:  []rangemap.ID{10, 5, 15, 5, 40, 2},
		Stages: []Section{{From: "a", To: "b", Rules: []Triple{{Dest: 1, Src: 2, Len: 3}}}},
	}

	res := Validate(a, rangemap.DefaultDomain(), ModeRanges)
	assert.True(t, res.IsValid())
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Infos, 1)
	assert.Equal(t, "seed_ranges_merged", res.Infos[0].Code)
	assert.Contains(t, res.Infos[0].Message, "3 seed ranges")
}

func TestValidate_OverlapBehindShortRule(t *testing.T) {
	a := &Almanac{
		Seeds: []rangemap.ID{0, 5},
		Stages: []Section{{From: "a", To: "b", Rules: []Triple{
			{Dest: 50, Src: 0, Len: 10},
			{Dest: 60, Src: 2, Len: 1},
			{Dest: 70, Src: 5, Len: 1},
		}}},
	}

	res := Validate(a, rangemap.DefaultDomain(), ModeRanges)
	require.Len(t, res.Errors, 2)

	for _, d := range res.Errors {
		assert.Equal(t, "overlapping_rules", d.Code)
		assert.Contains(t, d.Message, "of rule 1")
	}
}

func TestValidate_SeedModes(t *testing.T) {
	a := &Almanac{
		Seeds:  []rangemap.ID{100, 50},
		Stages: []Section{{From: "a", To: "b", Rules: []Triple{{Dest: 0, Src: 1, Len: 2}}}},
	}
	d := rangemap.Domain{Max: 128}

	t.Run("ranges", func(t *testing.T) {
		res := Validate(a, d, ModeRanges)
		assert.Equal(t, []string{"seed_outside_domain"}, codes(res.Errors))
	})

	t.Run("values", func(t *testing.T) {
		res := Validate(a, d, ModeValues)
		assert.True(t, res.IsValid(), res.Error())
		assert.Empty(t, res.Warnings)
		assert.Empty(t, res.Infos)
	})

	t.Run("value outside domain", func(t *testing.T) {
		b := *a
		b.Seeds = []rangemap.ID{100, 130}

		res := Validate(&b, d, ModeValues)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "seed 2", res.Errors[0].Location)
	})

	t.Run("odd count in value mode", func(t *testing.T) {
		b := *a
		b.Seeds = []rangemap.ID{1, 2, 3}

		res := Validate(&b, d, ModeValues)
		assert.True(t, res.IsValid())
		assert.Empty(t, res.Warnings)
	})
}
