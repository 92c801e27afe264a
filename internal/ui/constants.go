package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconBack     = "←"
	IconMore     = "›"
	IconImage    = "🖼"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Tile sizing
const (
	TileWidth       float32 = 250
	TileHeight      float32 = 250
	TileImageHeight float32 = 160
)

// Detail page sizing
const (
	DetailImageWidth  float32 = 480
	DetailImageHeight float32 = 320
)

// Window sizing
const (
	WindowWidth  float32 = 1024
	WindowHeight float32 = 768
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 400
)
