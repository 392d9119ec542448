package manifest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/repin-dev/repin/internal/core/domain"
)

// Render produces the canonical textual form of a manifest. Comment and
// blank entries are preserved verbatim; requirement entries are rendered
// without whitespace around operators, with inline comments re-attached
// after two spaces.
func Render(m *domain.Manifest) []byte {
	var b strings.Builder
	for _, entry := range m.Entries {
		switch entry.Kind {
		case domain.EntryBlank:
		case domain.EntryComment:
			b.WriteString("#")
			b.WriteString(entry.Text)
		case domain.EntryRequirement:
			b.WriteString(renderRequirement(entry.Requirement))
		}
		b.WriteString("\n")
	}
	return []byte(b.String())
}

func renderRequirement(req *domain.Requirement) string {
	line := req.String()
	if req.Comment != "" {
		line += "  # " + req.Comment
	}
	return line
}

// Fingerprint computes a stable hash over the manifest's requirements.
// Comments, blank lines, and declaration order do not affect the result,
// so cosmetic edits never invalidate a lockfile.
func Fingerprint(m *domain.Manifest) string {
	lines := make([]string, 0, m.RequirementCount())
	for req := range m.Requirements() {
		lines = append(lines, req.String())
	}
	sort.Strings(lines)

	hasher := xxhash.New()
	for _, line := range lines {
		_, _ = hasher.WriteString(line)
		_, _ = hasher.Write([]byte{0}) // Separator
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
