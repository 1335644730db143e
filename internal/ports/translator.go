package ports

// Translator resolves opaque failure codes (e.g. "member.banned") into
// localized text. Unknown codes are returned unchanged.
type Translator interface {
	Translate(lang, code string) string

	// Messages returns every known code of the best match for lang.
	Messages(lang string) map[string]string

	// Languages lists the supported language tags, default first.
	Languages() []string
}
