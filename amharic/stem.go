package amharic

import "strings"

// Prefixes and suffixes are tried in list order and the first match wins,
// which is why "ን" shadows the longer "ውን".
var (
	prefixes = []string{
		"የ", "በ", "ለ", "እና", "እንደ", "እስከ", "ስለ", "እንኳን",
	}
	suffixes = []string{
		"ን", "ኝ", "ው", "ዎች", "ዎቹ", "ዎቻቸው", "ዎቻችሁ", "ዎቻችን",
		"ውን", "ውም", "ውምን", "ውንም", "ውምንም",
		"ዎችን", "ዎቹን", "ዎቻቸውን", "ዎቻችሁን", "ዎቻችንን",
		"ዎችም", "ዎቹም", "ዎቻቸውም", "ዎቻችሁም", "ዎቻችንም",
	}
)

// Stem strips at most one prefix and then at most one suffix from an
// Amharic word. Other languages are returned as is. The result may be empty
// when the affixes cover the whole word.
func Stem(word string, lang Language) string {
	if lang != LanguageAmharic {
		return word
	}

	stem := word
	for _, p := range prefixes {
		if strings.HasPrefix(stem, p) {
			stem = stem[len(p):]
			break
		}
	}
	for _, s := range suffixes {
		if strings.HasSuffix(stem, s) {
			stem = stem[:len(stem)-len(s)]
			break
		}
	}
	return stem
}

// StemAll stems every token, keeping the slice parallel to its input.
func StemAll(tokens []string, lang Language) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = Stem(tok, lang)
	}
	return out
}
