package ui

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyBack              = "back"
	KeyItemCount         = "item_count"
	KeyOpenImage         = "open_image"
	KeyNoImage           = "no_image"
	KeyErrorOpeningImage = "error_opening_image"
	KeyAssetsDirectory   = "assets_directory"
	KeySampleDataFile    = "sample_data_file"
	KeyCompactTheme      = "compact_theme"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyEmbeddedData      = "embedded_data"
)

// supportedLanguages lists the languages with translations; the first one is
// the fallback
var supportedLanguages = []language.Tag{
	language.English,
	language.Russian,
	language.Portuguese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the closest supported
// language to the environment locale.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage(os.Getenv("LC_ALL"), os.Getenv("LANG"))
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// systemLanguage maps POSIX locale values such as "pt_BR.UTF-8" to the base
// code of the closest supported language. Earlier values take precedence.
func systemLanguage(locales ...string) string {
	var desired []string
	for _, loc := range locales {
		if i := strings.IndexAny(loc, ".@"); i >= 0 {
			loc = loc[:i]
		}
		if loc == "" || loc == "C" || loc == "POSIX" {
			continue
		}
		desired = append(desired, strings.ReplaceAll(loc, "_", "-"))
	}

	tag, _ := language.MatchStrings(languageMatcher, desired...)
	base, _ := tag.Base()
	return base.String()
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Gardening Directions",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyBack:              "Back",
		KeyItemCount:         "%d items",
		KeyOpenImage:         "Open image",
		KeyNoImage:           "No image",
		KeyErrorOpeningImage: "Error opening image",
		KeyAssetsDirectory:   "Assets Directory",
		KeySampleDataFile:    "Sample Data File",
		KeyCompactTheme:      "Compact theme",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved. Content changes apply after restart.",
		KeyEmbeddedData:      "Built-in sample content",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Садоводство",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyBack:              "Назад",
		KeyItemCount:         "Элементов: %d",
		KeyOpenImage:         "Открыть изображение",
		KeyNoImage:           "Нет изображения",
		KeyErrorOpeningImage: "Ошибка открытия изображения",
		KeyAssetsDirectory:   "Папка ресурсов",
		KeySampleDataFile:    "Файл с данными",
		KeyCompactTheme:      "Компактная тема",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки сохранены. Изменения данных вступят в силу после перезапуска.",
		KeyEmbeddedData:      "Встроенные данные",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Dicas de Jardinagem",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyBack:              "Voltar",
		KeyItemCount:         "%d itens",
		KeyOpenImage:         "Abrir imagem",
		KeyNoImage:           "Sem imagem",
		KeyErrorOpeningImage: "Erro ao abrir imagem",
		KeyAssetsDirectory:   "Diretório de Recursos",
		KeySampleDataFile:    "Arquivo de Dados",
		KeyCompactTheme:      "Tema compacto",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas. Alterações de conteúdo valem após reiniciar.",
		KeyEmbeddedData:      "Conteúdo de exemplo embutido",
	}
}
