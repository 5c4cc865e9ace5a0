package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"rangefold/internal/common"
)

// Diagnostics holds all diagnostic information from a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Stage identifies which stage this relates to (if any).
	Stage string
	// Location identifies the entry inside the stage (if any).
	Location string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// ParseSeverity parses a severity name as printed by String.
func ParseSeverity(s string) (DiagnosticSeverity, error) {
	for sev := DiagnosticInfo; sev <= DiagnosticError; sev++ {
		if strings.EqualFold(s, sev.String()) {
			return sev, nil
		}
	}

	return DiagnosticInfo, fmt.Errorf("unknown severity %q", s)
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, stage, location string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Stage:    stage,
		Location: location,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, stage, location string, suggestions ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        code,
		Message:     message,
		Stage:       stage,
		Location:    location,
		Suggestions: suggestions,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, stage, location string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Stage:    stage,
		Location: location,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, warnings and infos, in that order.
func (d *Diagnostics) All() []Diagnostic {
	return d.AtLeast(DiagnosticInfo)
}

// AtLeast returns the diagnostics of severity lowest or above, most severe
// first.
func (d *Diagnostics) AtLeast(lowest DiagnosticSeverity) []Diagnostic {
	var res []Diagnostic

	for sev := DiagnosticError; sev >= lowest; sev-- {
		res = append(res, d.bySeverity(sev)...)
	}

	return res
}

func (d *Diagnostics) bySeverity(sev DiagnosticSeverity) []Diagnostic {
	switch sev {
	case DiagnosticError:
		return d.Errors
	case DiagnosticWarning:
		return d.Warnings
	case DiagnosticInfo:
		return d.Infos
	default:
		return nil
	}
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Stage != "" {
		prefix = append(prefix, "["+d.Stage+"]")
	}

	if d.Location != "" {
		prefix = append(prefix, d.Location)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
