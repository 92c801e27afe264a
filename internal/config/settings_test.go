package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAssetsDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if dir := settings.GetAssetsDirectory(); dir != DefaultAssetsDir {
		t.Errorf("Expected default assets directory %s, got %s", DefaultAssetsDir, dir)
	}

	// Test setting custom value
	customDir := "/custom/assets"
	settings.SetAssetsDirectory(customDir)

	if dir := settings.GetAssetsDirectory(); dir != customDir {
		t.Errorf("Expected assets directory %s, got %s", customDir, dir)
	}

	// Test empty value defaults back
	settings.SetAssetsDirectory("")
	if dir := settings.GetAssetsDirectory(); dir != DefaultAssetsDir {
		t.Errorf("Empty assets directory should default to %s, got %s", DefaultAssetsDir, dir)
	}
}

func TestSampleDataFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if path := settings.GetSampleDataFile(); path != "" {
		t.Errorf("Expected embedded sample data by default, got %s", path)
	}

	settings.SetSampleDataFile("/data/garden.yaml")
	if path := settings.GetSampleDataFile(); path != "/data/garden.yaml" {
		t.Errorf("Expected sample data file /data/garden.yaml, got %s", path)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language 'pt', got %s", lang)
	}
}

func TestCompactTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetCompactTheme() {
		t.Error("Compact theme should be enabled by default")
	}

	settings.SetCompactTheme(false)
	if settings.GetCompactTheme() {
		t.Error("Compact theme should be disabled after SetCompactTheme(false)")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
