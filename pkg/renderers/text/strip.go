package text

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// stripMarkup reduces HTML to its text content, collapsing whitespace runs to
// single spaces and trimming the result.
func stripMarkup(raw string) string {
	if raw == "" {
		return ""
	}

	tokenizer := xhtml.NewTokenizer(strings.NewReader(raw))

	var b strings.Builder
	for {
		tt := tokenizer.Next()
		if tt == xhtml.ErrorToken {
			break
		}
		if tt != xhtml.TextToken {
			continue
		}
		b.Write(tokenizer.Text())
		b.WriteString(" ")
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
