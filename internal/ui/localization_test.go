package ui

import "testing"

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("de")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Unsupported language should be ignored, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should map to en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		for key := range l.texts["en"] {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("Language %s is missing %s", lang, key)
			}
		}
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		lang     string
		expected string
	}{
		{"en", "5 models."},
		{"ru", "Моделей: 5."},
		{"pt", "5 modelos."},
	}

	for _, tt := range tests {
		l.SetLanguage(tt.lang)
		if got := l.Format(KeyModelsCount, 5); got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.lang, tt.expected, got)
		}
	}
}
