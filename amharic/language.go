package amharic

// Language is a detected document language code.
type Language string

const (
	LanguageAmharic Language = "am"
	LanguageUnknown Language = "unknown"
)

const (
	ethiopicFirst = '\u1200'
	ethiopicLast  = '\u137F'
)

// IsEthiopic reports whether r lies in the Ethiopic block (U+1200–U+137F).
func IsEthiopic(r rune) bool {
	return r >= ethiopicFirst && r <= ethiopicLast
}

// DetectLanguage returns LanguageAmharic if text contains at least one
// Ethiopic rune and LanguageUnknown otherwise.
func DetectLanguage(text string) Language {
	for _, r := range text {
		if IsEthiopic(r) {
			return LanguageAmharic
		}
	}
	return LanguageUnknown
}
