package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	nested := map[string]interface{}{
		"wizard": map[string]interface{}{
			"title": "Wizard",
			"steps": map[string]interface{}{
				"preview": "Preview",
			},
		},
		"count": 123,
	}

	flat := make(map[string]string)
	flatten("", nested, flat)

	assert.Equal(t, "Wizard", flat["wizard.title"])
	assert.Equal(t, "Preview", flat["wizard.steps.preview"])
	assert.Equal(t, "123", flat["count"])
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		args     map[string]interface{}
		expected string
	}{
		{
			name:     "No placeholders",
			text:     "Hello World",
			args:     nil,
			expected: "Hello World",
		},
		{
			name:     "Single placeholder",
			text:     "{count} documents",
			args:     map[string]interface{}{"count": 2},
			expected: "2 documents",
		},
		{
			name:     "Missing argument",
			text:     "Hello {name}",
			args:     map[string]interface{}{"other": "val"},
			expected: "Hello {name}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result string
			if tt.args == nil {
				result = format(tt.text)
			} else {
				result = format(tt.text, tt.args)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetLocale(t *testing.T) {
	t.Run("Default locale", func(t *testing.T) {
		assert.Equal(t, "ar", GetLocale(context.Background()))
	})

	t.Run("Locale from LocaleContextKey", func(t *testing.T) {
		ctx := WithLocale(context.Background(), "en")
		assert.Equal(t, "en", GetLocale(ctx))
	})

	t.Run("Empty locale falls back", func(t *testing.T) {
		ctx := WithLocale(context.Background(), "")
		assert.Equal(t, "ar", GetLocale(ctx))
	})
}

func TestTranslateLogic(t *testing.T) {
	mutex.Lock()
	oldTrans := translations
	translations = map[string]map[string]string{
		"ar": {
			"test.hello":   "مرحبا",
			"test.welcome": "مرحبا {name}",
		},
		"en": {
			"test.hello": "Hello",
		},
	}
	mutex.Unlock()

	defer func() {
		mutex.Lock()
		translations = oldTrans
		mutex.Unlock()
	}()

	t.Run("Direct lookup", func(t *testing.T) {
		assert.Equal(t, "Hello", Translate("en", "test.hello"))
		assert.Equal(t, "مرحبا", Translate("ar", "test.hello"))
	})

	t.Run("Fallback to default", func(t *testing.T) {
		assert.Equal(t, "مرحبا علي", Translate("en", "test.welcome", map[string]interface{}{"name": "علي"}))
	})

	t.Run("Fallback to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", Translate("en", "missing.key"))
	})

	t.Run("T uses context locale", func(t *testing.T) {
		assert.Equal(t, "Hello", T(WithLocale(context.Background(), "en"), "test.hello"))
	})
}

func TestSetDefaultLanguage(t *testing.T) {
	defer SetDefaultLanguage("ar")

	SetDefaultLanguage("fr")
	assert.Equal(t, "ar", DefaultLanguage())

	SetDefaultLanguage("en")
	assert.Equal(t, "en", DefaultLanguage())
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "rtl", Direction("ar"))
	assert.Equal(t, "ltr", Direction("en"))
}

func TestLoadExecution(t *testing.T) {
	require.NoError(t, Load())

	mutex.RLock()
	defer mutex.RUnlock()
	for _, lang := range SupportedLanguages {
		assert.NotEmpty(t, translations[lang], lang)
	}

	// Every key shipped in Arabic must exist in English and the other way round
	for key := range translations["ar"] {
		_, ok := translations["en"][key]
		assert.True(t, ok, "missing en key %s", key)
	}
	for key := range translations["en"] {
		_, ok := translations["ar"][key]
		assert.True(t, ok, "missing ar key %s", key)
	}
}
