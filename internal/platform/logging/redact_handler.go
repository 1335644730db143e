package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names whose values never
// reach the log. The HTTP middleware redacts them at the call site as well.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

// privateFields are attribute keys carrying member-authored or personal
// data. Private message bodies in particular must not leak through fault
// records.
var privateFields = []string{
	"content",
	"subject",
	"email",
	"password",
	"secret",
	"token",
}

var (
	emailPattern  = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
)

// newRedactAttr builds the masq ReplaceAttr used by every handler New
// creates. Fields are redacted by name, and string values anywhere by
// pattern.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(privateFields)+3)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range privateFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(emailPattern),
		masq.WithRegex(bearerPattern),
	)
	return masq.New(opts...)
}
