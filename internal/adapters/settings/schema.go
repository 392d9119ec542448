package settings

// settingsFile is the YAML schema of the settings file. All sections are
// optional; zero values fall back to defaults.
type settingsFile struct {
	Version  string         `yaml:"version"`
	Manifest string         `yaml:"manifest"`
	Index    indexSection   `yaml:"index"`
	Resolve  resolveSection `yaml:"resolve"`
	Lint     lintSection    `yaml:"lint"`
}

type indexSection struct {
	URL      string `yaml:"url"`
	CacheDir string `yaml:"cacheDir"`
}

type resolveSection struct {
	AllowPrereleases bool `yaml:"allowPrereleases"`
}

type lintSection struct {
	FailOn           string            `yaml:"failOn"`
	AllowedOperators []string          `yaml:"allowedOperators"`
	Rules            map[string]string `yaml:"rules"`
}
