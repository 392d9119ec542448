package ports

import "github.com/repin-dev/repin/internal/core/domain"

// SettingsLoader defines the interface for loading workspace settings.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load finds and parses the settings file, walking up from cwd.
	// When no settings file exists, defaults are returned without error.
	Load(cwd string) (domain.Settings, error)
}
