package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyDatasetPath     = "dataset_path"
	KeyImagePadding    = "image_padding"
	KeyImageCacheLimit = "image_cache_limit"
	KeyFetchTimeout    = "fetch_timeout_seconds"
	KeyLanguage        = "app_language"
	KeyLogLevel        = "log_level"
)

// Default values
const (
	DefaultDatasetPath     = "shockbase.csv"
	DefaultImagePadding    = 10
	DefaultImageCacheLimit = 0
	DefaultFetchTimeout    = 30
	DefaultLanguage        = "system"
	DefaultLogLevel        = "info"
)

// Limits for numeric settings
const (
	MaxImagePadding    = 100
	MaxImageCacheLimit = 10000
	MinFetchTimeout    = 1
	MaxFetchTimeout    = 300
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDatasetPath returns the configured dataset path
func (s *Settings) GetDatasetPath() string {
	path := s.app.Preferences().String(KeyDatasetPath)
	if path == "" {
		s.SetDatasetPath(DefaultDatasetPath)
		return DefaultDatasetPath
	}
	return path
}

// SetDatasetPath sets the dataset path
func (s *Settings) SetDatasetPath(path string) {
	if path == "" {
		path = DefaultDatasetPath
	}
	s.app.Preferences().SetString(KeyDatasetPath, path)
}

// GetImagePadding returns the margin kept around the picture
func (s *Settings) GetImagePadding() int {
	return clamp(s.app.Preferences().IntWithFallback(KeyImagePadding, DefaultImagePadding), 0, MaxImagePadding)
}

// SetImagePadding sets the picture margin
func (s *Settings) SetImagePadding(padding int) {
	s.app.Preferences().SetInt(KeyImagePadding, clamp(padding, 0, MaxImagePadding))
}

// GetImageCacheLimit returns the maximum number of cached images, 0 for no limit
func (s *Settings) GetImageCacheLimit() int {
	return clamp(s.app.Preferences().IntWithFallback(KeyImageCacheLimit, DefaultImageCacheLimit), 0, MaxImageCacheLimit)
}

// SetImageCacheLimit sets the image cache limit
func (s *Settings) SetImageCacheLimit(limit int) {
	s.app.Preferences().SetInt(KeyImageCacheLimit, clamp(limit, 0, MaxImageCacheLimit))
}

// GetFetchTimeoutSeconds returns the image fetch timeout in seconds
func (s *Settings) GetFetchTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyFetchTimeout)
	if value <= 0 {
		s.SetFetchTimeoutSeconds(DefaultFetchTimeout)
		return DefaultFetchTimeout
	}
	return clamp(value, MinFetchTimeout, MaxFetchTimeout)
}

// SetFetchTimeoutSeconds sets the image fetch timeout
func (s *Settings) SetFetchTimeoutSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyFetchTimeout, clamp(seconds, MinFetchTimeout, MaxFetchTimeout))
}

// GetFetchTimeout returns the fetch timeout as a duration
func (s *Settings) GetFetchTimeout() time.Duration {
	return time.Duration(s.GetFetchTimeoutSeconds()) * time.Second
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

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	if level == "" {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
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

// GetLogLevelOptions returns available log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
