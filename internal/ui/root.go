package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gardening-directions/internal/config"
	"github.com/ytget/gardening-directions/internal/model"
	"github.com/ytget/gardening-directions/internal/observable"
	"github.com/ytget/gardening-directions/internal/platform"
	"github.com/ytget/gardening-directions/internal/registry"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	source       *registry.Source
	assets       *platform.AssetResolver
	settings     *config.Settings
	localization *Localization

	// Hub
	hubBox    *fyne.Container
	sections  []*GroupSection
	groupsSub observable.Subscription

	// Navigation stack; the hub is never popped
	stack   []*page
	content *fyne.Container
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, source *registry.Source, assets *platform.AssetResolver) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		source:       source,
		assets:       assets,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.groupsSub = source.AllGroups().Subscribe(func(observable.Change[*model.Group]) {
		ui.rebuildHub()
	})
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.hubBox = container.NewVBox()
	ui.rebuildHub()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	heading := widget.NewRichText(&widget.TextSegment{
		Style: widget.RichTextStyleHeading,
		Text:  ui.localization.GetText(KeyAppTitle),
	})
	top := container.NewBorder(nil, nil, nil, settingsBtn, heading)

	hub := &page{content: container.NewBorder(top, nil, nil, nil, container.NewVScroll(ui.hubBox))}
	ui.stack = []*page{hub}
	ui.content = container.NewStack(hub.content)

	ui.window.SetContent(ui.content)
}

// rebuildHub recreates one section per group
func (ui *RootUI) rebuildHub() {
	for _, s := range ui.sections {
		s.Close()
	}
	ui.sections = ui.sections[:0]
	ui.hubBox.RemoveAll()

	for _, group := range ui.source.AllGroups().Items() {
		section := NewGroupSection(group, group.TopItems(), ui.localization, true)
		section.SetCallbacks(ui.OpenGroup, ui.OpenItem)
		ui.sections = append(ui.sections, section)
		ui.hubBox.Add(section.Container())
	}

	slog.Debug("hub rebuilt", "groups", len(ui.sections))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange switches language and rebuilds every visible text
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()

	ui.Home()
	ui.setupUI()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}

// OpenGroup shows the page with all items of group
func (ui *RootUI) OpenGroup(group *model.Group) {
	ui.push(newGroupPage(group, ui.localization, ui.Back, ui.OpenItem))
}

// OpenItem shows the detail page of item
func (ui *RootUI) OpenItem(item *model.Item) {
	var onOpenImage func(*model.Item)
	if ui.assets != nil {
		onOpenImage = ui.onOpenImage
	}
	ui.push(newItemPage(item, ui.localization, ui.Back, onOpenImage))
}

// Back returns to the previous page
func (ui *RootUI) Back() {
	if len(ui.stack) <= 1 {
		return
	}
	top := ui.stack[len(ui.stack)-1]
	ui.stack = ui.stack[:len(ui.stack)-1]
	if top.close != nil {
		top.close()
	}
	ui.show(ui.stack[len(ui.stack)-1])
}

// Home returns to the hub
func (ui *RootUI) Home() {
	for len(ui.stack) > 1 {
		ui.Back()
	}
}

// Depth returns the number of pages on the navigation stack
func (ui *RootUI) Depth() int {
	return len(ui.stack)
}

// Sections returns the hub sections in group order
func (ui *RootUI) Sections() []*GroupSection {
	return ui.sections
}

// Close detaches the UI from the model
func (ui *RootUI) Close() {
	ui.Home()
	for _, s := range ui.sections {
		s.Close()
	}
	ui.sections = nil
	if ui.groupsSub != nil {
		ui.groupsSub.Cancel()
		ui.groupsSub = nil
	}
}

func (ui *RootUI) push(p *page) {
	ui.stack = append(ui.stack, p)
	ui.show(p)
}

func (ui *RootUI) show(p *page) {
	ui.content.Objects = []fyne.CanvasObject{p.content}
	ui.content.Refresh()
}

// onOpenImage opens the item's image file with the system viewer
func (ui *RootUI) onOpenImage(item *model.Item) {
	if err := ui.assets.Open(item.ImagePath()); err != nil {
		slog.Warn("failed to open image", "item", item.UniqueID(), "path", item.ImagePath(), "error", err)
		dialog.ShowError(ui.imageOpenError(err), ui.window)
	}
}

// imageOpenError prefixes err with the localized failure message
func (ui *RootUI) imageOpenError(err error) error {
	return fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningImage), err)
}
