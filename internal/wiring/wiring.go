// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/steady/internal/adapters/codec"
	_ "go.trai.ch/steady/internal/adapters/config"
	_ "go.trai.ch/steady/internal/adapters/logger"
	_ "go.trai.ch/steady/internal/adapters/simengine"
	_ "go.trai.ch/steady/internal/adapters/telemetry"
	_ "go.trai.ch/steady/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/steady/internal/app"
)
