// Package i18n resolves failure codes such as "member.banned" into localized
// text. Texts come from a built-in YAML catalog, optionally overridden by a
// deployment file with the same layout:
//
//	en:
//	  member.banned: "This member is banned."
//	pl:
//	  member.banned: "Ten użytkownik jest zbanowany."
package i18n

import (
	_ "embed"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtin []byte

// Translator looks texts up by language and code. It is safe for concurrent
// use once built.
type Translator struct {
	catalog   *catalog.Builder
	matcher   language.Matcher
	supported []language.Tag
	texts     map[language.Tag]map[string]string
}

// New builds a Translator from the built-in catalog merged with overrides,
// applied in order. defaultLang is used when a requested language is not
// supported and for codes a supported language lacks.
func New(defaultLang string, overrides ...[]byte) (*Translator, error) {
	fallback, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("parsing default language %q: %w", defaultLang, err)
	}

	texts := make(map[language.Tag]map[string]string)
	for i, src := range append([][]byte{builtin}, overrides...) {
		if err := merge(texts, src); err != nil {
			return nil, fmt.Errorf("catalog %d: %w", i, err)
		}
	}
	if _, ok := texts[fallback]; !ok {
		return nil, fmt.Errorf("default language %s has no catalog entries", fallback)
	}

	b := catalog.NewBuilder(catalog.Fallback(fallback))
	supported := []language.Tag{fallback}
	for tag, entries := range texts {
		if tag != fallback {
			supported = append(supported, tag)
		}
		for code, text := range entries {
			// The printer formats catalog texts; a literal percent must survive.
			if err := b.SetString(tag, code, strings.ReplaceAll(text, "%", "%%")); err != nil {
				return nil, fmt.Errorf("adding %s/%s: %w", tag, code, err)
			}
		}
	}
	// The fallback stays first; the rest is ordered for a stable matcher.
	slices.SortFunc(supported[1:], func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})

	return &Translator{
		catalog:   b,
		matcher:   language.NewMatcher(supported),
		supported: supported,
		texts:     texts,
	}, nil
}

// Load is New with an optional override file. An empty path uses the
// built-in catalog only.
func Load(defaultLang, path string) (*Translator, error) {
	if path == "" {
		return New(defaultLang)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return New(defaultLang, src)
}

// Translate returns the text of code in the best match for lang, which may
// be a tag ("pl") or an Accept-Language value ("pl-PL,en;q=0.8"). Unknown
// codes are returned unchanged.
func (t *Translator) Translate(lang, code string) string {
	tag := t.match(lang)
	if _, ok := t.texts[tag][code]; !ok {
		tag = t.supported[0]
		if _, ok := t.texts[tag][code]; !ok {
			return code
		}
	}
	return message.NewPrinter(tag, message.Catalog(t.catalog)).Sprintf(code)
}

// Messages returns every code of the best match for lang, completed with
// the default language's texts.
func (t *Translator) Messages(lang string) map[string]string {
	tag := t.match(lang)
	out := maps.Clone(t.texts[t.supported[0]])
	maps.Copy(out, t.texts[tag])
	return out
}

// Languages returns the supported language tags, default first.
func (t *Translator) Languages() []string {
	out := make([]string, len(t.supported))
	for i, tag := range t.supported {
		out[i] = tag.String()
	}
	return out
}

func (t *Translator) match(lang string) language.Tag {
	_, i := language.MatchStrings(t.matcher, lang)
	return t.supported[i]
}

func merge(into map[language.Tag]map[string]string, src []byte) error {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return fmt.Errorf("decoding yaml: %w", err)
	}
	for lang, entries := range raw {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("parsing language %q: %w", lang, err)
		}
		if into[tag] == nil {
			into[tag] = make(map[string]string, len(entries))
		}
		maps.Copy(into[tag], entries)
	}
	return nil
}
