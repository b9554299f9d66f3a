// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.pakt.dev/pakt/internal/adapters/config"
	_ "go.pakt.dev/pakt/internal/adapters/logger"
	_ "go.pakt.dev/pakt/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.pakt.dev/pakt/internal/app"
)
