package markdown

import (
	"strings"
	"testing"
)

func TestRenderEmphasis(t *testing.T) {
	tp := New()

	out := string(tp.Render("una *bella* esperienza"))
	if !strings.Contains(out, "<em>bella</em>") {
		t.Errorf("expected emphasis in output, got: %s", out)
	}
}

func TestRenderStripsScriptTags(t *testing.T) {
	tp := New()

	out := string(tp.Render(`ciao <script>alert("x")</script>`))
	if strings.Contains(out, "<script>") {
		t.Errorf("script tag survived sanitization: %s", out)
	}
}

func TestRenderStrikethrough(t *testing.T) {
	tp := New()

	out := string(tp.Render("~~vecchio prezzo~~"))
	if !strings.Contains(out, "<del>") {
		t.Errorf("expected strikethrough in output, got: %s", out)
	}
}
