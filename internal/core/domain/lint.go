package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// Severity classifies a lint finding.
type Severity int

const (
	// SeverityInfo marks advisory findings.
	SeverityInfo Severity = iota
	// SeverityWarning marks findings that deserve attention but do not fail a run by default.
	SeverityWarning
	// SeverityError marks findings that fail the run.
	SeverityError
)

// ParseSeverity parses a severity name as used in settings files.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return 0, zerr.With(ErrUnknownSeverity, "severity", s)
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// RuleID identifies a lint rule.
type RuleID string

const (
	// RuleSyntax flags entries that do not parse as requirements.
	RuleSyntax RuleID = "syntax"
	// RuleDuplicate flags packages declared more than once.
	RuleDuplicate RuleID = "duplicate"
	// RuleVersionSyntax flags malformed version identifiers and specifiers.
	RuleVersionSyntax RuleID = "version-syntax"
	// RuleOperatorPolicy flags constraint operators outside the allowed set.
	RuleOperatorPolicy RuleID = "operator-policy"
	// RuleCanonicalName flags names not written in canonical form.
	RuleCanonicalName RuleID = "canonical-name"
	// RuleUnsatisfiable flags requirements whose own constraints admit no version.
	RuleUnsatisfiable RuleID = "unsatisfiable"
)

// KnownRules lists every lint rule in reporting order.
func KnownRules() []RuleID {
	return []RuleID{
		RuleSyntax,
		RuleDuplicate,
		RuleVersionSyntax,
		RuleOperatorPolicy,
		RuleCanonicalName,
		RuleUnsatisfiable,
	}
}

// IsKnownRule reports whether name refers to a lint rule.
func IsKnownRule(name string) bool {
	for _, r := range KnownRules() {
		if string(r) == name {
			return true
		}
	}
	return false
}

// Finding is a single lint diagnostic.
type Finding struct {
	Rule     RuleID
	Severity Severity
	Line     int
	Package  string
	Message  string
}

// String renders a finding in file:line style for terminal output.
func (f Finding) String() string {
	if f.Line > 0 {
		return fmt.Sprintf("%d: %s: %s [%s]", f.Line, f.Severity, f.Message, f.Rule)
	}
	return fmt.Sprintf("%s: %s [%s]", f.Severity, f.Message, f.Rule)
}

// MaxSeverity returns the highest severity among findings, or SeverityInfo
// when there are none.
func MaxSeverity(findings []Finding) Severity {
	maxSev := SeverityInfo
	for _, f := range findings {
		if f.Severity > maxSev {
			maxSev = f.Severity
		}
	}
	return maxSev
}
