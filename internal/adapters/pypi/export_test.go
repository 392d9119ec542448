package pypi

import (
	"net/http"

	"github.com/jonboulle/clockwork"
)

// NewIndexForTest exports the private constructor so tests can inject an
// endpoint, cache path, client, and clock.
func NewIndexForTest(apiBase, cachePath string, client *http.Client, clock clockwork.Clock) (*Index, error) {
	return newIndex(apiBase, cachePath, client, clock)
}

// CacheTTLForTest exposes the cache freshness window.
const CacheTTLForTest = cacheTTL
