// Package rangemap provides piecewise-linear integer mappings built from
// "source range -> destination range" rules, and their composition.
//
// # Model
//
// An Interval is a half-open range [Start, End). A Rule maps every value of
// its Source interval onto its Destination interval by adding a constant
// offset. A Map is an ordered list of rules with pairwise disjoint sources.
//
// Two kinds of maps are built:
//
//   - total maps (NewTotal): sparse rules are sorted and every uncovered
//     subrange of [0, Domain.Max) is filled with an identity rule, so the map
//     is defined for every value of the domain;
//   - seed maps (NewSeedMap): identity rules covering only the given seed
//     intervals. Values outside the seeds are simply not part of the map.
//
// # Composition
//
// acc.Then(next) returns the map v -> next(acc(v)). It works purely on
// interval boundaries: every destination interval of acc is intersected with
// the source intervals of next (see Rule.Chain), so a seed range of billions
// of values costs as much as a seed range of one.
//
// The receiver is always the accumulated map and the argument the next stage.
// Swapping them yields a structurally valid but wrong map.
//
// # Domain bound
//
// The exclusive upper bound of the domain is a Domain value rather than a
// hard-coded constant. DefaultDomain uses math.MaxInt64; tests use small
// bounds to check maps value by value.
package rangemap
