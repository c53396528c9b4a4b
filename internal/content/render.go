package content

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// FarsiDelimiter separates the English part of an episode body from the
// Farsi part. It is matched literally.
const FarsiDelimiter = ":::fa:::"

// EmptyDescriptionHTML keeps layouts from collapsing when a description is
// empty.
const EmptyDescriptionHTML = "<p></p>"

// Rendered is the HTML of both language segments of a body.
type Rendered struct {
	DescriptionHTMLEn string
	DescriptionHTMLFa string
}

// Renderer converts Markdown (with the GFM extensions) into sanitized HTML.
// It holds no per-call state and is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	policy := bluemonday.UGCPolicy()
	// task list items render as disabled checkboxes
	policy.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	policy.AllowAttrs("checked", "disabled").OnElements("input")

	return &Renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: policy,
	}
}

// SplitBilingual cuts body at the first FarsiDelimiter. Without a delimiter
// the whole body is English and the Farsi part is empty.
func SplitBilingual(body string) (en string, fa string) {
	en, fa, _ = strings.Cut(body, FarsiDelimiter)
	return en, fa
}

// Render converts one Markdown segment. Blank input renders to "".
func (r *Renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return r.policy.Sanitize(buf.String()), nil
}

// RenderBilingual splits body and renders each language independently.
func (r *Renderer) RenderBilingual(body string) (Rendered, error) {
	en, fa := SplitBilingual(body)

	htmlEn, err := r.Render(en)
	if err != nil {
		return Rendered{}, fmt.Errorf("english segment: %w", err)
	}

	htmlFa, err := r.Render(fa)
	if err != nil {
		return Rendered{}, fmt.Errorf("farsi segment: %w", err)
	}

	return Rendered{DescriptionHTMLEn: htmlEn, DescriptionHTMLFa: htmlFa}, nil
}

// DisplayHTML substitutes the placeholder for an empty description.
func DisplayHTML(html string) string {
	if strings.TrimSpace(html) == "" {
		return EmptyDescriptionHTML
	}
	return html
}
