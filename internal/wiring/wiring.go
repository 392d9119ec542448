// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/repin-dev/repin/internal/adapters/lockstore"
	_ "github.com/repin-dev/repin/internal/adapters/logger"
	_ "github.com/repin-dev/repin/internal/adapters/manifest"
	_ "github.com/repin-dev/repin/internal/adapters/pypi"
	_ "github.com/repin-dev/repin/internal/adapters/settings"
	_ "github.com/repin-dev/repin/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/repin-dev/repin/internal/app"
	_ "github.com/repin-dev/repin/internal/engine/lint"
	_ "github.com/repin-dev/repin/internal/engine/resolve"
)
