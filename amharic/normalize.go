package amharic

import "regexp"

type normalizationRule struct {
	pattern     *regexp.Regexp
	replacement string
}

func rule(pattern, replacement string) normalizationRule {
	return normalizationRule{
		pattern:     regexp.MustCompile(pattern),
		replacement: replacement,
	}
}

// normalizationRules is applied top to bottom. Later rules see the output of
// earlier ones (ሉዓ becomes ሉአ and then ሏ), so the order must not change.
var normalizationRules = []normalizationRule{
	// letter variants
	rule(`[ሃኀኃሐሓኻ]`, "ሀ"),
	rule(`[ሑኁዅ]`, "ሁ"),
	rule(`[ኂሒኺ]`, "ሂ"),
	rule(`[ኌሔዄ]`, "ሄ"),
	rule(`[ሕኅ]`, "ህ"),
	rule(`[ኆሖኾ]`, "ሆ"),
	rule(`[ሠ]`, "ሰ"),
	rule(`[ዓኣዐ]`, "አ"),
	rule(`[ዑ]`, "ኡ"),
	rule(`[ዒ]`, "ኢ"),
	rule(`[ዔ]`, "ኤ"),
	rule(`[ዕ]`, "እ"),
	rule(`[ዖ]`, "ኦ"),
	rule(`[ጸ]`, "ፀ"),
	rule(`[ጹ]`, "ፁ"),
	rule(`[ጺ]`, "ፂ"),
	rule(`[ጻ]`, "ፃ"),
	rule(`[ጼ]`, "ፄ"),
	rule(`[ጽ]`, "ፅ"),
	rule(`[ጾ]`, "ፆ"),

	// consonant + ዋ/አ glide collapses to the labialized form
	rule(`ሉ[ዋአ]`, "ሏ"),
	rule(`ሙ[ዋአ]`, "ሟ"),
	rule(`ቱ[ዋአ]`, "ቷ"),
	rule(`ሩ[ዋአ]`, "ሯ"),
	rule(`ሱ[ዋአ]`, "ሷ"),
	rule(`ሹ[ዋአ]`, "ሿ"),
	rule(`ቁ[ዋአ]`, "ቋ"),
	rule(`ቡ[ዋአ]`, "ቧ"),
	rule(`ቹ[ዋአ]`, "ቿ"),
	rule(`ሁ[ዋአ]`, "ኋ"),
	rule(`ኑ[ዋአ]`, "ኗ"),
	rule(`ኙ[ዋአ]`, "ኟ"),
	rule(`ኩ[ዋአ]`, "ኳ"),
	rule(`ዙ[ዋአ]`, "ዟ"),
	rule(`ጉ[ዋአ]`, "ጓ"),
	rule(`ደ[ዋአ]`, "ዷ"),
	rule(`ጡ[ዋአ]`, "ጧ"),
	rule(`ጩ[ዋአ]`, "ጯ"),
	rule(`ጹ[ዋአ]`, "ጿ"),
	rule(`ፉ[ዋአ]`, "ፏ"),

	// archaic labialized forms
	rule(`[ቊ]`, "ቁ"),
	rule(`[ኵ]`, "ኩ"),
}

// maxNormalizePasses bounds the fixed-point loop in Normalize. Only the
// labialization rules can fire after the first pass and each of them drops a
// rune, so real input settles in two passes.
const maxNormalizePasses = 8

// Normalize collapses Ethiopic orthographic variants to their canonical
// glyphs. The ordered rule table is applied as a whole, every match replaced,
// and the pass is repeated until the text stops changing, so
// Normalize(Normalize(s)) == Normalize(s) for any s.
// Text without Ethiopic variants is returned unchanged.
func Normalize(text string) string {
	for range maxNormalizePasses {
		next := normalizeOnce(text)
		if next == text {
			break
		}
		text = next
	}
	return text
}

func normalizeOnce(text string) string {
	for _, r := range normalizationRules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}
