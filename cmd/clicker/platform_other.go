//go:build !linux && !windows

package main

import (
	"fmt"
	"log/slog"

	"github.com/usausausausak/autoclick/internal/core/autoclicker"
)

type unsupportedConnector struct{}

func (unsupportedConnector) Connect() (autoclicker.Display, error) {
	return nil, fmt.Errorf("clicking is not supported on this platform")
}

func newConnector(string) autoclicker.Connector {
	return unsupportedConnector{}
}

func checkSession(logger *slog.Logger) {
	logger.Warn("No input backend for this platform")
}
