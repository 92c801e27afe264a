package main

import (
	"log/slog"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/gardening-directions/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	slog.Info("Gardening Directions starting", "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(ui.AppID)

	// Build the main window from saved settings
	ui.Launch(myApp, "")

	myApp.Run()
}
