package amharic

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	markupTags   = regexp.MustCompile(`<[^>]+>`)
	digits       = regexp.MustCompile(`[0-9]+`)
	specialChars = regexp.MustCompile("[!@#$%^&*_+=|\\\\<>/?~`]+")
	spaces       = regexp.MustCompile(`\s+`)

	sentenceEnd   = regexp.MustCompile(`[።፡፤፥፦፧፨]+`)
	wordSeparator = regexp.MustCompile(`[፣፤]+`)
	quotes        = regexp.MustCompile(`[‘’“”"'«»‹›]+`)
	brackets      = regexp.MustCompile(`[()\[\]{}]+`)
)

// Tokenize splits text into word tokens in document order. Duplicates are
// kept. The text goes through markup removal, Normalize, case folding and
// digit/special character removal before it is cut on Ethiopic punctuation
// and whitespace. Empty input gives an empty, non-nil slice.
func Tokenize(text string) []string {
	text = removeMarkup(text)
	text = Normalize(text)
	text = preprocess(text)

	text = sentenceEnd.ReplaceAllString(text, " ")
	text = wordSeparator.ReplaceAllString(text, " ")
	text = quotes.ReplaceAllString(text, "")
	text = brackets.ReplaceAllString(text, "")

	tokens := strings.Fields(text)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

func removeMarkup(text string) string {
	text = markupTags.ReplaceAllString(text, "")
	return strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) || IsEthiopic(r) {
			return r
		}
		return ' '
	}, text)
}

func preprocess(text string) string {
	text = strings.ToLower(text)
	text = digits.ReplaceAllString(text, " ")
	text = specialChars.ReplaceAllString(text, " ")
	text = spaces.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
