package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	got := string(RenderMarkdown("**bold** <script>alert(1)</script>"))
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("want rendered emphasis, got %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("script tag must be stripped, got %q", got)
	}
}

func TestEnhanceHTMLContent(t *testing.T) {
	got := string(EnhanceHTMLContent(`<p><img src="/a.png"/> <a href="https://example.com">x</a></p>`))
	if !strings.Contains(got, `loading="lazy"`) {
		t.Errorf("want lazy image, got %q", got)
	}
	if !strings.Contains(got, `rel="nofollow noopener noreferrer"`) {
		t.Errorf("want outbound link rel, got %q", got)
	}
	if EnhanceHTMLContent("") != "" {
		t.Error("empty input must stay empty")
	}
}

func TestParseID(t *testing.T) {
	if id, ok := ParseID("42"); !ok || id != 42 {
		t.Errorf("want 42, got %d (%v)", id, ok)
	}
	for _, s := range []string{"", "0", "-1", "abc"} {
		if _, ok := ParseID(s); ok {
			t.Errorf("ParseID(%q) should fail", s)
		}
	}
}
