// Package markdown renders visitor-supplied text (review and activity
// descriptions) for display. Output is sanitized: the backend stores the
// text verbatim and this client must not trust it.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *TextProcessor {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough),
	)
	return &TextProcessor{
		md:     md,
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts markdown to sanitized HTML. On a render failure the raw
// text is escaped and returned as-is so the page still shows something.
func (tp *TextProcessor) Render(text string) template.HTML {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(tp.policy.Sanitize(buf.String()))
}
