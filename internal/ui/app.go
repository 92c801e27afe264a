package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/ytget/gardening-directions/internal/config"
	"github.com/ytget/gardening-directions/internal/platform"
	"github.com/ytget/gardening-directions/internal/registry"
)

// Application identity
const (
	AppID = "com.ytget.gardening-directions"
)

// LoadSource loads content from dataFile, or from the embedded sample content
// when dataFile is empty or cannot be loaded
func LoadSource(dataFile string, assets *platform.AssetResolver) *registry.Source {
	if dataFile != "" {
		source, err := registry.LoadFile(dataFile, assets.Load)
		if err == nil {
			return source
		}
		slog.Error("failed to load sample data, using built-in content", "file", dataFile, "error", err)
	}

	source, err := registry.LoadEmbedded(assets.Load)
	if err != nil {
		// The embedded document is part of the build.
		panic(err)
	}
	return source
}

// Launch builds the main window of app from its settings and shows it.
// dataFile overrides the configured sample data file when non-empty.
func Launch(app fyne.App, dataFile string) fyne.Window {
	settings := config.NewSettings(app)
	app.Settings().SetTheme(NewGardenTheme(settings.GetCompactTheme()))

	if dataFile == "" {
		dataFile = settings.GetSampleDataFile()
	}
	assets := platform.NewAssetResolver(settings.GetAssetsDirectory())
	source := LoadSource(dataFile, assets)

	window := app.NewWindow("")
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	NewRootUI(window, app, source, assets)

	slog.Info("window ready", "groups", source.AllGroups().Len(), "assets", assets.BaseDir())
	window.Show()
	return window
}
