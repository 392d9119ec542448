package domain

import "slices"

// Settings carries the workspace configuration read from the settings file,
// with defaults applied for everything left unset.
type Settings struct {
	// ManifestPath explicitly names the manifest, overriding discovery.
	ManifestPath string

	// IndexURL is the base URL of the package index JSON API.
	IndexURL string

	// CacheDir overrides the index cache location.
	CacheDir string

	// AllowedOperators restricts which constraint operators the
	// operator-policy rule accepts.
	AllowedOperators []Operator

	// AllowPrereleases permits resolving to pre-release versions when no
	// stable release satisfies a constraint.
	AllowPrereleases bool

	// FailOn is the severity at which lint findings fail the run.
	FailOn Severity

	// RuleSeverity overrides the default severity per rule.
	RuleSeverity map[RuleID]Severity
}

// DefaultSettings returns the settings used when no settings file exists.
// The operator policy matches what the manifest format promises: tilde pins
// and exact pins.
func DefaultSettings() Settings {
	return Settings{
		IndexURL:         "https://pypi.org/pypi",
		AllowedOperators: []Operator{OpCompatible, OpEqual},
		FailOn:           SeverityError,
		RuleSeverity:     map[RuleID]Severity{},
	}
}

// OperatorAllowed reports whether the operator passes the configured policy.
func (s Settings) OperatorAllowed(op Operator) bool {
	return slices.Contains(s.AllowedOperators, op)
}
