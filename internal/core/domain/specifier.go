package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Operator is a version constraint operator.
type Operator string

const (
	// OpCompatible is the compatible-release operator (~=). It permits
	// patch/minor updates within the bound given by the constraint version.
	OpCompatible Operator = "~="
	// OpEqual is the exact version match operator (==).
	OpEqual Operator = "=="
	// OpNotEqual excludes a version (!=).
	OpNotEqual Operator = "!="
	// OpLess matches versions strictly below the bound (<).
	OpLess Operator = "<"
	// OpLessEqual matches versions at or below the bound (<=).
	OpLessEqual Operator = "<="
	// OpGreater matches versions strictly above the bound (>).
	OpGreater Operator = ">"
	// OpGreaterEqual matches versions at or above the bound (>=).
	OpGreaterEqual Operator = ">="
	// OpArbitrary is the arbitrary string equality operator (===).
	OpArbitrary Operator = "==="
)

// operators lists all operators longest-first so that prefix scanning
// never mistakes "===" for "==" or "~=" for "~".
var operators = []Operator{
	OpArbitrary, OpEqual, OpNotEqual, OpCompatible, OpLessEqual, OpGreaterEqual, OpLess, OpGreater,
}

// SplitOperator splits a constraint clause into its operator and version
// part. Returns ErrInvalidOperator if the clause does not start with a
// known operator.
func SplitOperator(clause string) (Operator, string, error) {
	for _, op := range operators {
		if rest, ok := strings.CutPrefix(clause, string(op)); ok {
			return op, strings.TrimSpace(rest), nil
		}
	}
	return "", "", zerr.With(ErrInvalidOperator, "clause", clause)
}

// Specifier is a single version constraint clause: an operator applied to
// a version identifier.
type Specifier struct {
	Op      Operator
	Raw     string // version part as written, e.g. "2.3.*"
	version Version
	prefix  []int // release prefix for wildcard clauses
}

// ParseSpecifier parses a clause such as "~=1.4.2" or "==2.*".
func ParseSpecifier(clause string) (Specifier, error) {
	op, rest, err := SplitOperator(strings.TrimSpace(clause))
	if err != nil {
		return Specifier{}, err
	}
	if rest == "" {
		return Specifier{}, zerr.With(ErrInvalidSpecifier, "clause", clause)
	}

	s := Specifier{Op: op, Raw: rest}

	// Arbitrary equality compares raw strings and accepts anything.
	if op == OpArbitrary {
		return s, nil
	}

	if trimmed, ok := strings.CutSuffix(rest, ".*"); ok {
		if op != OpEqual && op != OpNotEqual {
			return Specifier{}, zerr.With(ErrInvalidSpecifier, "clause", clause)
		}
		v, err := ParseVersion(trimmed)
		if err != nil {
			return Specifier{}, zerr.With(err, "clause", clause)
		}
		if v.IsPreRelease() || v.Post >= 0 || v.Local != "" {
			return Specifier{}, zerr.With(ErrInvalidSpecifier, "clause", clause)
		}
		s.version = v
		s.prefix = v.Release
		return s, nil
	}

	v, err := ParseVersion(rest)
	if err != nil {
		return Specifier{}, zerr.With(err, "clause", clause)
	}
	s.version = v

	if op == OpCompatible {
		// ~=N requires at least a major and minor segment to define the
		// compatibility window.
		if len(v.Release) < 2 {
			return Specifier{}, zerr.With(ErrCompatibleReleasePrecision, "clause", clause)
		}
		if v.Local != "" {
			return Specifier{}, zerr.With(ErrInvalidSpecifier, "clause", clause)
		}
	}

	return s, nil
}

// IsWildcard reports whether the specifier uses prefix matching (==X.Y.*).
func (s Specifier) IsWildcard() bool {
	return s.prefix != nil
}

// Version returns the parsed bound version. Undefined for arbitrary
// equality clauses.
func (s Specifier) Version() Version {
	return s.version
}

// Matches reports whether the candidate version satisfies the specifier.
func (s Specifier) Matches(v Version) bool {
	switch s.Op {
	case OpArbitrary:
		return strings.EqualFold(strings.TrimSpace(v.String()), s.Raw)
	case OpEqual:
		if s.IsWildcard() {
			return v.Epoch == s.version.Epoch && v.ReleasePrefixMatches(s.prefix)
		}
		return v.Compare(s.version) == 0
	case OpNotEqual:
		if s.IsWildcard() {
			return v.Epoch != s.version.Epoch || !v.ReleasePrefixMatches(s.prefix)
		}
		return v.Compare(s.version) != 0
	case OpCompatible:
		if v.Compare(s.version) < 0 {
			return false
		}
		return v.Epoch == s.version.Epoch &&
			v.ReleasePrefixMatches(s.version.Release[:len(s.version.Release)-1])
	case OpLess:
		return v.Compare(s.version) < 0
	case OpLessEqual:
		return v.Compare(s.version) <= 0
	case OpGreater:
		return v.Compare(s.version) > 0
	case OpGreaterEqual:
		return v.Compare(s.version) >= 0
	default:
		return false
	}
}

// String renders the specifier in canonical form (no inner whitespace).
func (s Specifier) String() string {
	return string(s.Op) + s.Raw
}
