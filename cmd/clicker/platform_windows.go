//go:build windows

package main

import (
	"log/slog"

	"github.com/usausausausak/autoclick/internal/adapters/wininput"
	"github.com/usausausausak/autoclick/internal/core/autoclicker"
)

func newConnector(display string) autoclicker.Connector {
	return wininput.Connector{}
}

func checkSession(logger *slog.Logger) {
	logger.Debug("Session", "backend", "windows")
}
