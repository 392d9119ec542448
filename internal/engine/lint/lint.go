// Package lint implements rule-driven analysis of requirements manifests.
package lint

import (
	"errors"
	"fmt"
	"sort"

	"github.com/repin-dev/repin/internal/core/domain"
	"github.com/repin-dev/repin/internal/core/ports"
)

// defaultSeverity gives each rule its built-in severity before settings
// overrides are applied.
var defaultSeverity = map[domain.RuleID]domain.Severity{
	domain.RuleSyntax:         domain.SeverityError,
	domain.RuleDuplicate:      domain.SeverityError,
	domain.RuleVersionSyntax:  domain.SeverityError,
	domain.RuleOperatorPolicy: domain.SeverityError,
	domain.RuleCanonicalName:  domain.SeverityWarning,
	domain.RuleUnsatisfiable:  domain.SeverityError,
}

// Engine runs all lint rules over a parsed manifest.
type Engine struct {
	log ports.Logger
}

// New creates a new lint Engine.
func New(log ports.Logger) *Engine {
	return &Engine{log: log}
}

// Run evaluates every rule and returns the findings sorted by line.
// Parse issues collected during loading become syntax or version-syntax
// findings so one report covers the whole file.
func (e *Engine) Run(m *domain.Manifest, issues []domain.ParseIssue, settings domain.Settings) []domain.Finding {
	var findings []domain.Finding

	findings = append(findings, e.parseFindings(issues, settings)...)
	findings = append(findings, e.checkDuplicates(m, settings)...)
	findings = append(findings, e.checkRequirements(m, settings)...)

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Line < findings[j].Line
	})

	e.log.Info(fmt.Sprintf("linted %d requirements, %d findings", m.RequirementCount(), len(findings)))
	return findings
}

// Failed reports whether the findings reach the configured failure severity.
func Failed(findings []domain.Finding, settings domain.Settings) bool {
	for _, f := range findings {
		if f.Severity >= settings.FailOn {
			return true
		}
	}
	return false
}

// parseFindings converts loader parse issues into findings. Malformed
// version identifiers and specifiers map to the version-syntax rule;
// everything else is a syntax finding.
func (e *Engine) parseFindings(issues []domain.ParseIssue, settings domain.Settings) []domain.Finding {
	findings := make([]domain.Finding, 0, len(issues))
	for _, issue := range issues {
		rule := domain.RuleSyntax
		if isVersionSyntaxIssue(issue.Err) {
			rule = domain.RuleVersionSyntax
		}

		findings = append(findings, domain.Finding{
			Rule:     rule,
			Severity: severityFor(rule, settings),
			Line:     issue.Line,
			Message:  fmt.Sprintf("cannot parse %q: %s", issue.Text, issue.Err),
		})
	}
	return findings
}

func isVersionSyntaxIssue(err error) bool {
	return errors.Is(err, domain.ErrInvalidVersion) ||
		errors.Is(err, domain.ErrInvalidSpecifier) ||
		errors.Is(err, domain.ErrCompatibleReleasePrecision)
}

// checkDuplicates flags packages declared more than once, by canonical name.
func (e *Engine) checkDuplicates(m *domain.Manifest, settings domain.Settings) []domain.Finding {
	var findings []domain.Finding
	for _, dup := range m.Duplicates() {
		// Report on every line after the first declaration.
		for _, line := range dup.Lines[1:] {
			findings = append(findings, domain.Finding{
				Rule:     domain.RuleDuplicate,
				Severity: severityFor(domain.RuleDuplicate, settings),
				Line:     line,
				Package:  dup.Name,
				Message:  fmt.Sprintf("package %q already declared on line %d", dup.Name, dup.Lines[0]),
			})
		}
	}
	return findings
}

// checkRequirements runs the per-requirement rules: operator policy,
// canonical naming, and self-consistency of the specifier set.
func (e *Engine) checkRequirements(m *domain.Manifest, settings domain.Settings) []domain.Finding {
	var findings []domain.Finding

	for req := range m.Requirements() {
		for _, spec := range req.Specifiers {
			if !settings.OperatorAllowed(spec.Op) {
				findings = append(findings, domain.Finding{
					Rule:     domain.RuleOperatorPolicy,
					Severity: severityFor(domain.RuleOperatorPolicy, settings),
					Line:     req.Line,
					Package:  req.CanonicalName(),
					Message:  fmt.Sprintf("operator %q is not in the allowed set", spec.Op),
				})
			}
		}

		if !req.IsCanonical() {
			findings = append(findings, domain.Finding{
				Rule:     domain.RuleCanonicalName,
				Severity: severityFor(domain.RuleCanonicalName, settings),
				Line:     req.Line,
				Package:  req.CanonicalName(),
				Message:  fmt.Sprintf("name %q is not canonical, write %q", req.Name, req.CanonicalName()),
			})
		}

		if !req.Satisfiable() {
			findings = append(findings, domain.Finding{
				Rule:     domain.RuleUnsatisfiable,
				Severity: severityFor(domain.RuleUnsatisfiable, settings),
				Line:     req.Line,
				Package:  req.CanonicalName(),
				Message:  fmt.Sprintf("constraints %q admit no version", req.ConstraintString()),
			})
		}
	}

	return findings
}

func severityFor(rule domain.RuleID, settings domain.Settings) domain.Severity {
	if sev, ok := settings.RuleSeverity[rule]; ok {
		return sev
	}
	return defaultSeverity[rule]
}
