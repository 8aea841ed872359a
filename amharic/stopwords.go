package amharic

var amharicStopWords = map[string]struct{}{
	"ነው": {}, "የ": {}, "እና": {}, "በ": {}, "ለ": {}, "እየ": {}, "ማድረግ": {},
	"እንዲሁ": {}, "እንደ": {}, "ተብሎ": {}, "እንቀሳቀስ": {}, "እንጂ": {}, "ወይም": {},
	"እስከ": {}, "ስለ": {}, "እንኳን": {}, "ይህ": {}, "ነበር": {}, "እዚህ": {},
	"ይሆናል": {}, "ይደርሳል": {}, "የነው": {}, "ያለ": {}, "እናቸው": {}, "ነበሩ": {},
	"ብቻ": {}, "እርሱ": {},
}

// stopWords maps each supported language to its stop-word set.
var stopWords = map[Language]map[string]struct{}{
	LanguageAmharic: amharicStopWords,
}

// IsStopWord reports whether word is a stop word of lang.
func IsStopWord(word string, lang Language) bool {
	set, ok := stopWords[lang]
	if !ok {
		return false
	}
	_, ok = set[word]
	return ok
}

// RemoveStopWords returns the tokens that are not stop words of lang, in
// their original order. For a language without a stop-word set the tokens
// are returned unchanged.
func RemoveStopWords(tokens []string, lang Language) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if IsStopWord(tok, lang) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
