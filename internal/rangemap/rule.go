package rangemap

import (
	"fmt"
)

// Rule maps every value of Source onto Destination by adding Offset().
// Source and Destination always have the same length.
type Rule struct {
	Source      Interval
	Destination Interval
}

// FromTriple builds a rule from the (destination start, source start, length)
// triple used by the almanac formats.
func FromTriple(dest, src, length ID) (Rule, error) {
	if length <= 0 {
		return Rule{}, &MalformedRuleError{
			Rule:   Rule{Source: Interval{Start: src, End: src}, Destination: Interval{Start: dest, End: dest}},
			Reason: fmt.Sprintf("length %d is not positive", length),
		}
	}

	for _, start := range []ID{src, dest} {
		if start < 0 {
			return Rule{}, &DomainOverflowError{
				Interval: Interval{Start: start, End: start},
				Bound:    MaxID,
				Reason:   "negative start",
			}
		}

		if start > MaxID-length {
			return Rule{}, &DomainOverflowError{
				Interval: Interval{Start: start, End: MaxID},
				Bound:    MaxID,
				Reason:   fmt.Sprintf("length %d overflows", length),
			}
		}
	}

	return Rule{
		Source:      NewInterval(src, length),
		Destination: NewInterval(dest, length),
	}, nil
}

// Identity returns the rule mapping iv onto itself.
func Identity(iv Interval) Rule {
	return Rule{Source: iv, Destination: iv}
}

// Offset is the constant added to a source value to get its destination.
func (r Rule) Offset() ID {
	return r.Destination.Start - r.Source.Start
}

// Len returns the length shared by Source and Destination.
func (r Rule) Len() ID {
	return r.Source.Len()
}

// IsIdentity returns true if the rule does not move any value.
func (r Rule) IsIdentity() bool {
	return r.Source == r.Destination
}

// Translate maps v through the rule. v must be part of Source.
func (r Rule) Translate(v ID) (ID, error) {
	if !r.Source.Contains(v) {
		return 0, &OutOfRangeError{Value: v, Source: r.Source}
	}

	return v + r.Offset(), nil
}

// Chain merges r with the rule applied after it.
//
// The part of r.Destination that overlaps next.Source is taken; the result
// maps the values of r.Source landing there directly onto the matching part
// of next.Destination. false is returned if r.Destination and next.Source do
// not overlap.
//
// All offset arithmetic of composition happens here.
func (r Rule) Chain(next Rule) (Rule, bool) {
	overlap, ok := r.Destination.Overlap(next.Source)
	if !ok {
		return Rule{}, false
	}

	res := Rule{
		Source:      overlap.Shift(-r.Offset()),
		Destination: overlap.Shift(next.Offset()),
	}

	if res.Source.Start < 0 || res.Destination.Start < 0 {
		panic(fmt.Sprintf("rangemap: chaining %s with %s produced %s", r, next, res))
	}

	return res, true
}

// String formats the rule as "[a,b)->[c,d)".
func (r Rule) String() string {
	return r.Source.String() + "->" + r.Destination.String()
}
