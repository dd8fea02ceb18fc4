// Package i18n holds the portal's message catalogs and language negotiation.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing better matches.
const DefaultLanguage = "en"

// LangCookieName carries an explicit language choice.
const LangCookieName = "lang"

//go:embed locales/*.json
var localeFS embed.FS

// Bundle stores translations for every loaded language.
type Bundle struct {
	mu       sync.RWMutex
	catalogs map[string]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
	fallback string
}

// NewBundle builds an empty bundle falling back to fallback.
func NewBundle(fallback string) *Bundle {
	if fallback == "" {
		fallback = DefaultLanguage
	}
	return &Bundle{catalogs: make(map[string]map[string]string), fallback: fallback}
}

// LoadDefault loads the embedded catalogs.
func LoadDefault(fallback string) (*Bundle, error) {
	b := NewBundle(fallback)
	files, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}
	for _, f := range files {
		data, err := localeFS.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", f.Name(), err)
		}
		if err := b.LoadMessages(strings.TrimSuffix(f.Name(), ".json"), data); err != nil {
			return nil, err
		}
	}
	if _, ok := b.catalogs[b.fallback]; !ok {
		return nil, fmt.Errorf("i18n: no catalog for fallback language %q", b.fallback)
	}
	return b, nil
}

// LoadMessages registers a flat JSON catalog {"key": "text"} for lang.
func (b *Bundle) LoadMessages(lang string, data []byte) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("i18n: invalid language %q: %w", lang, err)
	}
	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("i18n: parse catalog %s: %w", lang, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.catalogs[lang]; !exists {
		b.tags = append(b.tags, tag)
	}
	b.catalogs[lang] = messages
	b.matcher = language.NewMatcher(b.orderedTags())
	return nil
}

// orderedTags puts the fallback first so the matcher defaults to it.
func (b *Bundle) orderedTags() []language.Tag {
	out := make([]language.Tag, 0, len(b.tags))
	for _, t := range b.tags {
		if t.String() == b.fallback {
			out = append([]language.Tag{t}, out...)
			continue
		}
		out = append(out, t)
	}
	return out
}

// Languages lists loaded language codes.
func (b *Bundle) Languages() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.tags))
	for _, t := range b.orderedTags() {
		out = append(out, t.String())
	}
	return out
}

// Negotiate picks a loaded language from an explicit choice and an
// Accept-Language header, in that order.
func (b *Bundle) Negotiate(explicit, acceptLanguage string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if explicit != "" {
		if _, ok := b.catalogs[explicit]; ok {
			return explicit
		}
	}
	if acceptLanguage == "" || b.matcher == nil {
		return b.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.fallback
	}
	return b.orderedTags()[idx].String()
}

// T translates key for lang, falling back to the default language and then
// to the key itself. Args are applied with fmt.Sprintf.
func (b *Bundle) T(lang, key string, args ...any) string {
	b.mu.RLock()
	msg, ok := b.catalogs[lang][key]
	if !ok {
		msg, ok = b.catalogs[b.fallback][key]
	}
	b.mu.RUnlock()

	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
