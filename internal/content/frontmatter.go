package content

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"podcastsite/internal/validate"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// dateLayouts are tried in order when publishedAt is given as a string.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
}

// Frontmatter is the validated metadata header of an episode file.
type Frontmatter struct {
	TitleEn     string    `json:"titleEn" validate:"required"`
	TitleFa     string    `json:"titleFa" validate:"required"`
	AudioURL    string    `json:"audioUrl" validate:"required,url"`
	PublishedAt time.Time `json:"publishedAt"`

	// Extra holds every other key of the header, unvalidated.
	Extra map[string]any `json:"-"`
}

// ValidationError lists frontmatter problems per field.
type ValidationError struct {
	Fields validate.FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strings.Join(e.Fields[k], "; "))
	}
	return "invalid frontmatter: " + strings.Join(parts, "; ")
}

// SplitFrontmatter separates a "---" fenced header from the Markdown body.
// ok is false when the text does not open with a fence or the fence is never
// closed; body is then the whole text.
func SplitFrontmatter(raw string) (header string, body string, ok bool) {
	text := strings.TrimPrefix(raw, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	first, rest, found := strings.Cut(text, "\n")
	if !found || strings.TrimRight(first, " \t") != fence {
		return "", text, false
	}

	lines := strings.SplitAfter(rest, "\n")
	for i, line := range lines {
		if strings.TrimRight(line, " \t\n") == fence {
			return strings.Join(lines[:i], ""), strings.Join(lines[i+1:], ""), true
		}
	}

	return "", text, false
}

// ParseDocument splits raw file text into validated frontmatter and the
// Markdown body.
func ParseDocument(raw string) (Frontmatter, string, error) {
	header, body, ok := SplitFrontmatter(raw)

	fields := map[string]any{}
	if ok && strings.TrimSpace(header) != "" {
		if err := yaml.Unmarshal([]byte(header), &fields); err != nil {
			return Frontmatter{}, body, &ValidationError{
				Fields: validate.FieldErrors{"frontmatter": {"frontmatter is not valid YAML: " + err.Error()}},
			}
		}
	}

	fm, errs := decodeFrontmatter(fields)
	if verrs := validate.Struct(fm); verrs != nil {
		errs.Merge(verrs)
	}

	if len(errs) > 0 {
		return Frontmatter{}, body, &ValidationError{Fields: errs}
	}

	return fm, body, nil
}

func decodeFrontmatter(fields map[string]any) (Frontmatter, validate.FieldErrors) {
	errs := validate.FieldErrors{}
	fm := Frontmatter{Extra: map[string]any{}}

	fm.TitleEn = stringField(fields, "titleEn", errs)
	fm.TitleFa = stringField(fields, "titleFa", errs)
	fm.AudioURL = stringField(fields, "audioUrl", errs)

	if raw, present := fields["publishedAt"]; !present || raw == nil {
		errs.Add("publishedAt", "publishedAt is required")
	} else if when, ok := coerceDate(raw); ok {
		fm.PublishedAt = when
	} else {
		errs.Add("publishedAt", "publishedAt must be a valid date string")
	}

	for k, v := range fields {
		switch k {
		case "titleEn", "titleFa", "audioUrl", "publishedAt":
		default:
			fm.Extra[k] = v
		}
	}

	return fm, errs
}

func stringField(fields map[string]any, key string, errs validate.FieldErrors) string {
	raw, present := fields[key]
	if !present || raw == nil {
		// reported by the required rule
		return ""
	}

	s, ok := raw.(string)
	if !ok {
		errs.Add(key, fmt.Sprintf("%s must be a string", key))
		return ""
	}
	// stored verbatim: only an empty string fails the required rule
	return s
}

func coerceDate(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	case int:
		return time.UnixMilli(int64(v)).UTC(), true
	case int64:
		return time.UnixMilli(v).UTC(), true
	case uint64:
		return time.UnixMilli(int64(v)).UTC(), true
	case float64:
		return time.UnixMilli(int64(v)).UTC(), true
	}
	return time.Time{}, false
}
