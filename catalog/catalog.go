package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/localekit/resbridge/errors"
)

// NewBundle creates a message bundle with TOML support registered.
func NewBundle(defaultLang language.Tag) *i18n.Bundle {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// LoadMessages loads messages.<locale>.toml for each locale from dir.
func LoadMessages(bundle *i18n.Bundle, dir string, locales ...string) error {
	for _, locale := range locales {
		path := filepath.Join(dir, fmt.Sprintf("messages.%s.toml", locale))
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return errors.Load(fmt.Sprintf("load message file %s", path), err)
		}
	}
	return nil
}

// ParseMessages adds in-memory TOML message data for a locale.
func ParseMessages(bundle *i18n.Bundle, locale string, data []byte) error {
	name := fmt.Sprintf("messages.%s.toml", locale)
	if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
		return errors.Load(fmt.Sprintf("parse messages for %s", locale), err)
	}
	return nil
}
