package forum

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jsamuelsen11/forumcore/internal/domain"
)

// Length limits for user supplied text.
const (
	MaxNameLength    = 255
	MaxSubjectLength = 255
)

// CategoryData is the editable part of a category.
type CategoryData struct {
	Name        string
	Description string
	Visible     bool
	Sort        int
}

// Normalize trims and NFC-normalises the text fields.
func (d CategoryData) Normalize() CategoryData {
	d.Name = clean(d.Name)
	d.Description = clean(d.Description)
	return d
}

// Validate checks the payload. Returns a *domain.ValidationError or nil.
func (d CategoryData) Validate() error {
	fields := make(map[string]string)
	checkName(fields, "name", d.Name, MaxNameLength)
	return result(fields)
}

// ForumData is the editable part of a forum.
type ForumData struct {
	Name        string
	Description string
	Visible     bool
	Sort        int
}

// Normalize trims and NFC-normalises the text fields.
func (d ForumData) Normalize() ForumData {
	d.Name = clean(d.Name)
	d.Description = clean(d.Description)
	return d
}

// Validate checks the payload. Returns a *domain.ValidationError or nil.
func (d ForumData) Validate() error {
	fields := make(map[string]string)
	checkName(fields, "name", d.Name, MaxNameLength)
	return result(fields)
}

// ThreadData is the editable part of a thread.
type ThreadData struct {
	Name string
}

// Normalize trims and NFC-normalises the text fields.
func (d ThreadData) Normalize() ThreadData {
	d.Name = clean(d.Name)
	return d
}

// Validate checks the payload. Returns a *domain.ValidationError or nil.
func (d ThreadData) Validate() error {
	fields := make(map[string]string)
	checkName(fields, "name", d.Name, MaxNameLength)
	return result(fields)
}

// PostData is the editable part of a post.
type PostData struct {
	Content string
}

// Normalize trims and NFC-normalises the text fields.
func (d PostData) Normalize() PostData {
	d.Content = clean(d.Content)
	return d
}

// Validate checks the payload. Returns a *domain.ValidationError or nil.
func (d PostData) Validate() error {
	fields := make(map[string]string)
	if d.Content == "" {
		fields["content"] = domain.MsgRequired
	}
	return result(fields)
}

// MessageData is the content of a private message.
type MessageData struct {
	Subject string
	Content string
}

// Normalize trims and NFC-normalises the text fields.
func (d MessageData) Normalize() MessageData {
	d.Subject = clean(d.Subject)
	d.Content = clean(d.Content)
	return d
}

// Validate checks the payload. Returns a *domain.ValidationError or nil.
func (d MessageData) Validate() error {
	fields := make(map[string]string)
	checkName(fields, "subject", d.Subject, MaxSubjectLength)
	if d.Content == "" {
		fields["content"] = domain.MsgRequired
	}
	return result(fields)
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func checkName(fields map[string]string, key, value string, limit int) {
	switch n := utf8.RuneCountInString(value); {
	case n == 0:
		fields[key] = domain.MsgRequired
	case n > limit:
		fields[key] = fmt.Sprintf("must be at most %d characters, got %d", limit, n)
	}
}

func result(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
