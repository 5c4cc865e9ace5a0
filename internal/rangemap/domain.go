package rangemap

import "fmt"

// Domain is the value space [0, Max) a total map covers.
type Domain struct {
	Max ID
}

// DefaultDomain covers every non-negative ID.
func DefaultDomain() Domain {
	return Domain{Max: MaxID}
}

// Validate checks that the bound is usable.
func (d Domain) Validate() error {
	if d.Max <= 0 {
		return fmt.Errorf("%w: bound %d is not positive", ErrDomainOverflow, d.Max)
	}

	return nil
}

// Interval returns [0, Max).
func (d Domain) Interval() Interval {
	return Interval{Start: 0, End: d.Max}
}

func (d Domain) String() string {
	return d.Interval().String()
}

func (d Domain) check(iv Interval) error {
	if iv.Start < 0 {
		return &DomainOverflowError{Interval: iv, Bound: d.Max, Reason: "starts below zero"}
	}

	if iv.End > d.Max {
		return &DomainOverflowError{Interval: iv, Bound: d.Max, Reason: "ends above the domain bound"}
	}

	return nil
}
