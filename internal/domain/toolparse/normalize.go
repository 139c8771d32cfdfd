package toolparse

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// degreeSigns are dropped before matching; tools print them after angle
// and temperature values and some terminals mangle them.
var degreeSigns = map[rune]bool{
	'°': true, // degree sign
	'˚': true, // ring above
	'º': true, // masculine ordinal, common mis-encoding
	'℃': true,
	'℉': true,
}

// foldDash maps every dash and minus variant to ASCII hyphen-minus.
func foldDash(r rune) rune {
	switch r {
	case '‐', '‑', '‒', '–', '—', '―', // hyphens and dashes
		'−', // minus sign
		'➖', // heavy minus sign
		'﹘', '﹣', '－': // small and fullwidth forms
		return '-'
	}
	return r
}

// Normalize prepares captured tool text for matching: degree signs are
// removed, the text is NFKC-normalized, and minus variants become '-'.
// Dashes are folded after NFKC because NFKC itself turns superscript
// minus into U+2212.
func Normalize(text string) string {
	t := transform.Chain(
		runes.Remove(runes.Predicate(func(r rune) bool { return degreeSigns[r] })),
		norm.NFKC,
		runes.Map(foldDash),
	)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}
