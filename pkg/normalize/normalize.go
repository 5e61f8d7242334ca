// Package normalize provides deterministic message-text cleanup used for
// dedup and extraction stability. Numbers, tickers, units and uncertainty
// phrasing are preserved; only wire markers and whitespace noise are removed.
package normalize

import (
	"regexp"
	"strings"
)

var (
	wsRe = regexp.MustCompile(`\s+`)

	// Leading attention markers: warning symbols, repeated stars, and
	// BREAKING/ALERT/URGENT prefixes (with or without a colon).
	symbolPrefixRe    = regexp.MustCompile(`^[🚨⚠️❗‼️*]+\s*`)
	attentionPrefixRe = regexp.MustCompile(`^(?:BREAKING|ALERT|URGENT)\s*:?\s+`)

	// Dateline of the form "WASHINGTON (Reuters) — " at the start.
	datelineRe = regexp.MustCompile(`^[A-Z][A-Z .,'\-]{1,40}\([A-Za-z .]{2,24}\)\s*(?:—|–|--)\s*`)

	// Trailing wire attribution of the form "— Reuters" / "– AP".
	wireSuffixRe = regexp.MustCompile(`\s*(?:—|–|--)\s*[A-Z][A-Za-z.]{1,20}$`)

	// Runs of the same punctuation character collapse to one. Go's RE2
	// engine has no backreferences, so each character gets its own branch.
	repeatedPunctRe = regexp.MustCompile(`(!)!+|(\?)\?+|(\.)\.+|(,),+|(;);+|(:):+`)
)

// MessageText returns the stable normalized form of raw feed text.
// The transformation is deterministic and idempotent: applying it to its own
// output yields a byte-identical string.
func MessageText(raw string) string {
	text := strings.TrimSpace(raw)
	text = wsRe.ReplaceAllString(text, " ")

	// Strip attention prefixes repeatedly: markers stack ("🚨 BREAKING: ...").
	for {
		next := symbolPrefixRe.ReplaceAllString(text, "")
		next = attentionPrefixRe.ReplaceAllString(next, "")
		if next == text {
			break
		}
		text = next
	}

	text = datelineRe.ReplaceAllString(text, "")
	text = wireSuffixRe.ReplaceAllString(text, "")
	text = repeatedPunctRe.ReplaceAllString(text, "$1$2$3$4$5$6")

	text = wsRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
