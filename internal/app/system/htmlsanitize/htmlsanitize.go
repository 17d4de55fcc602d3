// Package htmlsanitize cleans member-supplied text before it reaches a
// template.
//
// Biographies and work-history descriptions may carry light HTML. Rich
// output goes through bluemonday's UGC policy; previews are reduced to
// plain text with the strict policy and then truncated.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize returns s with unsafe markup removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugc.Sanitize(s)
}

// SanitizeToHTML is Sanitize typed for direct template output.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no markup.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}

// RichText renders s for display. Plain text is escaped and split into
// paragraphs on blank lines; markup is sanitized.
func RichText(s string) template.HTML {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !IsPlainText(s) {
		return SanitizeToHTML(s)
	}
	var b strings.Builder
	for _, para := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(template.HTMLEscapeString(para))
		b.WriteString("</p>")
	}
	return template.HTML(b.String())
}

// PlainText strips all markup and returns unescaped text with runs of
// whitespace collapsed.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(strict.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

// Truncate shortens s to at most limit runes, cutting at a word boundary
// when one exists, and appends an ellipsis. Strings within the limit are
// returned unchanged. A limit <= 0 disables truncation.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	cut := runes[:limit]
	if !unicode.IsSpace(runes[limit]) {
		for i := len(cut) - 1; i > 0; i-- {
			if unicode.IsSpace(cut[i]) {
				cut = cut[:i]
				break
			}
		}
	}
	return strings.TrimRight(string(cut), " \t\n,.;:") + "…"
}

// Preview is PlainText followed by Truncate.
func Preview(s string, limit int) string {
	return Truncate(PlainText(s), limit)
}
