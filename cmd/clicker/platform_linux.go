//go:build linux

package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/usausausausak/autoclick/internal/adapters/x11display"
	"github.com/usausausausak/autoclick/internal/core/autoclicker"
)

func newConnector(display string) autoclicker.Connector {
	return x11display.Connector{Display: display}
}

// checkSession warns when the session is unlikely to accept X11 input.
func checkSession(logger *slog.Logger) {
	display := strings.TrimSpace(os.Getenv("DISPLAY"))
	sessionType := strings.ToLower(strings.TrimSpace(os.Getenv("XDG_SESSION_TYPE")))

	switch {
	case sessionType == "wayland" && display != "":
		logger.Warn("Wayland session detected; clicks only reach XWayland windows")
	case sessionType == "wayland":
		logger.Warn("Wayland session without DISPLAY; an X11 server is required")
	case display == "":
		logger.Warn("DISPLAY is not set; pass --display or run inside an X11 session")
	}
	logger.Debug("Session", "type", sessionType, "display", display)
}
