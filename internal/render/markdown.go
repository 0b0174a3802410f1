// Package render turns article bodies written in markdown into HTML that is
// safe to embed in a page.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Renderer struct {
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

func New() *Renderer {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy:   p,
	}
}

// HTML converts body to sanitized HTML. Raw HTML in the source is dropped
// by goldmark and anything left that the policy disallows is stripped.
func (r *Renderer) HTML(body string) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSpace(string(r.policy.SanitizeBytes(buf.Bytes()))), nil
}
