package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/gardening-directions/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAssetsDir      = "assets_directory"
	KeySampleDataFile = "sample_data_file"
	KeyLanguage       = "app_language"
	KeyCompactTheme   = "compact_theme"
)

// Default values
const (
	DefaultAssetsDir    = platform.DefaultAssetsDir
	DefaultLanguage     = "system"
	DefaultCompactTheme = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAssetsDirectory returns the directory image paths are resolved against
func (s *Settings) GetAssetsDirectory() string {
	dir := s.app.Preferences().String(KeyAssetsDir)
	if dir == "" {
		s.SetAssetsDirectory(DefaultAssetsDir)
		return DefaultAssetsDir
	}
	return dir
}

// SetAssetsDirectory sets the assets directory
func (s *Settings) SetAssetsDirectory(dir string) {
	if dir == "" {
		dir = DefaultAssetsDir
	}
	s.app.Preferences().SetString(KeyAssetsDir, dir)
}

// GetSampleDataFile returns the YAML file to load content from; empty means
// the embedded sample content
func (s *Settings) GetSampleDataFile() string {
	return s.app.Preferences().String(KeySampleDataFile)
}

// SetSampleDataFile sets the sample data file
func (s *Settings) SetSampleDataFile(path string) {
	s.app.Preferences().SetString(KeySampleDataFile, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCompactTheme returns whether the compact theme is enabled
func (s *Settings) GetCompactTheme() bool {
	return s.app.Preferences().BoolWithFallback(KeyCompactTheme, DefaultCompactTheme)
}

// SetCompactTheme enables or disables the compact theme
func (s *Settings) SetCompactTheme(compact bool) {
	s.app.Preferences().SetBool(KeyCompactTheme, compact)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
