package pypi

import (
	"encoding/json"
	"time"
)

// ProjectResponse is the shape of the PyPI JSON API project endpoint
// (GET /pypi/<name>/json). Only the fields the index needs are mapped;
// release file metadata is left opaque.
type ProjectResponse struct {
	Info     ProjectInfo                `json:"info"`
	Releases map[string]json.RawMessage `json:"releases"`
}

// ProjectInfo carries the project-level metadata of a PyPI response.
type ProjectInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// cacheEntry is the on-disk cache format for a project's release list.
type cacheEntry struct {
	Name      string    `json:"name"`
	Versions  []string  `json:"versions"`
	Timestamp time.Time `json:"timestamp"`
}
