package rangemap

import (
	"errors"
	"fmt"
)

// Sentinel errors. The typed errors below unwrap to one of these.
var (
	// ErrMalformedRule indicates a rule with an empty source or overlapping sources.
	ErrMalformedRule = errors.New("malformed rule")
	// ErrDomainOverflow indicates an interval outside of [0, Domain.Max).
	ErrDomainOverflow = errors.New("domain overflow")
	// ErrOutOfRange indicates a value that is not part of a rule's source.
	ErrOutOfRange = errors.New("value out of range")
	// ErrDomainMismatch indicates maps built for different domains.
	ErrDomainMismatch = errors.New("domain mismatch")
)

// MalformedRuleError is returned while ingesting sparse rules.
type MalformedRuleError struct {
	Rule Rule
	// Conflict is the already accepted rule Rule overlaps with, if any.
	Conflict *Rule
	Reason   string
}

func (e *MalformedRuleError) Error() string {
	if e.Conflict != nil {
		return fmt.Sprintf("malformed rule %s: %s with %s", e.Rule, e.Reason, *e.Conflict)
	}

	return fmt.Sprintf("malformed rule %s: %s", e.Rule, e.Reason)
}

func (e *MalformedRuleError) Unwrap() error {
	return ErrMalformedRule
}

// DomainOverflowError is returned when an interval leaves [0, Bound).
type DomainOverflowError struct {
	Interval Interval
	Bound    ID
	Reason   string
}

func (e *DomainOverflowError) Error() string {
	return fmt.Sprintf("interval %s exceeds domain [0,%s): %s", e.Interval, formatID(e.Bound), e.Reason)
}

func (e *DomainOverflowError) Unwrap() error {
	return ErrDomainOverflow
}

// OutOfRangeError is returned by Rule.Translate for values outside the source.
type OutOfRangeError struct {
	Value  ID
	Source Interval
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %d is not in source %s", e.Value, e.Source)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
