// Package manifest implements the requirements manifest parser and writer.
package manifest

import (
	"strings"

	"github.com/repin-dev/repin/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parse parses manifest content into a domain.Manifest.
// Unparseable lines are collected as ParseIssues instead of aborting, so
// one bad entry does not hide the rest of the file from the linter.
func Parse(path string, data []byte) (*domain.Manifest, []domain.ParseIssue) {
	m := domain.NewManifest(path)
	var issues []domain.ParseIssue

	lines := strings.Split(string(data), "\n")
	// A trailing newline produces one empty trailing element, not a blank entry.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, " \t\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			m.Append(domain.Entry{Kind: domain.EntryBlank, Line: lineNo})
		case strings.HasPrefix(trimmed, "#"):
			m.Append(domain.Entry{
				Kind: domain.EntryComment,
				Text: strings.TrimPrefix(trimmed, "#"),
				Line: lineNo,
			})
		default:
			req, err := parseRequirementLine(trimmed, lineNo)
			if err != nil {
				issues = append(issues, domain.ParseIssue{Line: lineNo, Text: trimmed, Err: err})
				continue
			}
			m.Append(domain.Entry{Kind: domain.EntryRequirement, Requirement: req, Line: lineNo})
		}
	}

	return m, issues
}

// parseRequirementLine parses a single constraint entry of the form
// name[extras]<op><version>[,<op><version>...] with an optional inline
// "#" comment.
func parseRequirementLine(line string, lineNo int) (*domain.Requirement, error) {
	entry, comment := splitInlineComment(line)
	entry = strings.TrimSpace(entry)

	if entry == "" {
		return nil, zerr.With(domain.ErrEmptyEntry, "line", lineNo)
	}

	// Installer directives (-r, -e, --index-url, ...) are not manifest
	// entries in this format.
	if strings.HasPrefix(entry, "-") {
		return nil, zerr.With(domain.ErrUnsupportedDirective, "entry", entry)
	}

	name, rest := splitName(entry)
	if !domain.IsValidName(name) {
		return nil, zerr.With(domain.ErrInvalidName, "name", name)
	}

	req := &domain.Requirement{
		Name:    domain.NewInternedString(name),
		Comment: comment,
		Line:    lineNo,
	}

	rest = strings.TrimSpace(rest)
	if extras, after, ok := splitExtras(rest); ok {
		req.Extras = extras
		rest = strings.TrimSpace(after)
	} else if strings.HasPrefix(rest, "[") {
		return nil, zerr.With(domain.ErrInvalidRequirement, "entry", entry)
	}

	if rest == "" {
		// Bare name without a constraint. Valid syntax; the linter
		// decides whether it is acceptable.
		return req, nil
	}

	for clause := range strings.SplitSeq(rest, ",") {
		spec, err := domain.ParseSpecifier(clause)
		if err != nil {
			return nil, err
		}
		req.Specifiers = append(req.Specifiers, spec)
	}

	return req, nil
}

// splitInlineComment splits an entry from its trailing comment. A "#"
// only starts a comment when preceded by whitespace.
func splitInlineComment(line string) (entry, comment string) {
	for i := 1; i < len(line); i++ {
		if line[i] == '#' && (line[i-1] == ' ' || line[i-1] == '\t') {
			return line[:i], strings.TrimSpace(line[i+1:])
		}
	}
	return line, ""
}

// splitName splits the leading package name from the remainder of the entry.
func splitName(entry string) (name, rest string) {
	for i := 0; i < len(entry); i++ {
		c := entry[i]
		if isNameChar(c) {
			continue
		}
		return entry[:i], entry[i:]
	}
	return entry, ""
}

func isNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.' || c == '-' || c == '_':
		return true
	default:
		return false
	}
}

// splitExtras parses a bracketed extras list at the start of rest.
func splitExtras(rest string) (extras []string, after string, ok bool) {
	if !strings.HasPrefix(rest, "[") {
		return nil, "", false
	}
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return nil, "", false
	}

	inner := rest[1:end]
	for part := range strings.SplitSeq(inner, ",") {
		extra := strings.TrimSpace(part)
		if extra == "" {
			return nil, "", false
		}
		extras = append(extras, extra)
	}
	return extras, rest[end+1:], true
}
