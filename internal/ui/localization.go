package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySeries           = "series"
	KeySubseries        = "subseries"
	KeyModels           = "models"
	KeyPicture          = "picture"
	KeySelectSeries     = "select_series"
	KeySubseriesCount   = "subseries_count"
	KeyModelsCount      = "models_count"
	KeyYearUnknown      = "year_unknown"
	KeyLoadingImage     = "loading_image"
	KeyImageError       = "image_error"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyDatasetPath      = "dataset_path"
	KeyImagePadding     = "image_padding"
	KeyImageCacheLimit  = "image_cache_limit"
	KeyFetchTimeout     = "fetch_timeout"
	KeyLogLevel         = "log_level"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyRestartRequired  = "restart_required"
	KeyInterfaceSection = "interface_section"
	KeyViewerSection    = "viewer_section"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
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

// Format returns the localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "G-Shock Database",
		KeySeries:           "Series",
		KeySubseries:        "Subseries",
		KeyModels:           "Models",
		KeyPicture:          "Picture",
		KeySelectSeries:     "Select a series...",
		KeySubseriesCount:   "%d subseries.",
		KeyModelsCount:      "%d models.",
		KeyYearUnknown:      "Year unknown",
		KeyLoadingImage:     "Loading picture...",
		KeyImageError:       "Picture unavailable",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyDatasetPath:      "Dataset File",
		KeyImagePadding:     "Picture Padding",
		KeyImageCacheLimit:  "Picture Cache Limit (0 = unlimited)",
		KeyFetchTimeout:     "Download Timeout (seconds)",
		KeyLogLevel:         "Log Level",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartRequired:  "Dataset, picture and log changes apply after restart.",
		KeyInterfaceSection: "Interface Settings",
		KeyViewerSection:    "Viewer Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "База G-Shock",
		KeySeries:           "Серии",
		KeySubseries:        "Подсерии",
		KeyModels:           "Модели",
		KeyPicture:          "Изображение",
		KeySelectSeries:     "Выберите серию...",
		KeySubseriesCount:   "Подсерий: %d.",
		KeyModelsCount:      "Моделей: %d.",
		KeyYearUnknown:      "Год неизвестен",
		KeyLoadingImage:     "Загрузка изображения...",
		KeyImageError:       "Изображение недоступно",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyDatasetPath:      "Файл данных",
		KeyImagePadding:     "Отступ изображения",
		KeyImageCacheLimit:  "Лимит кэша изображений (0 = без лимита)",
		KeyFetchTimeout:     "Таймаут загрузки (секунды)",
		KeyLogLevel:         "Уровень логов",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyRestartRequired:  "Изменения данных, изображений и логов вступят в силу после перезапуска.",
		KeyInterfaceSection: "Настройки интерфейса",
		KeyViewerSection:    "Настройки просмотра",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Base de Dados G-Shock",
		KeySeries:           "Séries",
		KeySubseries:        "Subséries",
		KeyModels:           "Modelos",
		KeyPicture:          "Imagem",
		KeySelectSeries:     "Selecione uma série...",
		KeySubseriesCount:   "%d subséries.",
		KeyModelsCount:      "%d modelos.",
		KeyYearUnknown:      "Ano desconhecido",
		KeyLoadingImage:     "Carregando imagem...",
		KeyImageError:       "Imagem indisponível",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyDatasetPath:      "Arquivo de Dados",
		KeyImagePadding:     "Margem da Imagem",
		KeyImageCacheLimit:  "Limite do Cache de Imagens (0 = ilimitado)",
		KeyFetchTimeout:     "Tempo Limite de Download (segundos)",
		KeyLogLevel:         "Nível de Log",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyRestartRequired:  "Alterações de dados, imagens e logs valem após reiniciar.",
		KeyInterfaceSection: "Configurações da Interface",
		KeyViewerSection:    "Configurações do Visualizador",
	}
}
