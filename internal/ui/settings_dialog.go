package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gardening-directions/internal/config"
	"github.com/ytget/gardening-directions/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	assetsDirEntry  *widget.Entry
	dataFileEntry   *widget.Entry
	languageSelect  *widget.Select
	compactCheck    *widget.Check
	languageOptions []string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.assetsDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseAssetsDirectory)
	assetsDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.assetsDirEntry)

	sd.dataFileEntry = widget.NewEntry()
	sd.dataFileEntry.SetPlaceHolder(text(KeyEmbeddedData))
	browseFileBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDataFile)
	dataFileRow := container.NewBorder(nil, nil, nil, browseFileBtn, sd.dataFileEntry)

	for code := range sd.settings.GetLanguageOptions() {
		sd.languageOptions = append(sd.languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(sd.languageOptions, nil)

	sd.compactCheck = widget.NewCheck(text(KeyCompactTheme), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyAssetsDirectory)+":"),
		assetsDirRow,

		widget.NewLabel(text(KeySampleDataFile)+":"),
		dataFileRow,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
		sd.compactCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.assetsDirEntry.SetText(sd.settings.GetAssetsDirectory())
	sd.dataFileEntry.SetText(sd.settings.GetSampleDataFile())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.compactCheck.SetChecked(sd.settings.GetCompactTheme())
}

// onBrowseAssetsDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseAssetsDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.assetsDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onBrowseDataFile handles sample data file browsing
func (sd *SettingsDialog) onBrowseDataFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.dataFileEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.assetsDirEntry.Text; dir != "" {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			slog.Error("failed to create assets directory", "dir", dir, "error", err)
			dialog.ShowError(err, sd.window)
			return
		}
	}
	sd.settings.SetAssetsDirectory(sd.assetsDirEntry.Text)
	sd.settings.SetSampleDataFile(sd.dataFileEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	sd.settings.SetCompactTheme(sd.compactCheck.Checked)

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
