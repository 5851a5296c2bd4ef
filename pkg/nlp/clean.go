package nlp

import (
	"regexp"
	"strings"
)

// Punctuation is the fixed set of characters Clean turns into spaces.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// whitespace mirrors the Unicode whitespace set of the tooling the
// vectorizer was trained with, so the cleaner splits tokens exactly where
// the training pipeline did (U+001C..U+001F and U+0085 are included).
const whitespace = `\t\n\v\f\r\x{1c}-\x{1f} \x{85}\x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}`

var (
	reURL       = regexp.MustCompile(`http[^` + whitespace + `]+`)
	reRetweetCC = regexp.MustCompile(`RT|cc`)
	reMention   = regexp.MustCompile(`@[^` + whitespace + `]+`)
	reHashtag   = regexp.MustCompile(`#[^` + whitespace + `]+`)
	rePunct     = regexp.MustCompile(punctClass())
	reNonASCII  = regexp.MustCompile(`[^\x00-\x7f]`)
	reSpaceRun  = regexp.MustCompile(`[` + whitespace + `]+`)
)

func punctClass() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range Punctuation {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return b.String()
}

// Clean приводит текст резюме к виду, на котором обучался векторизатор.
// Steps run in a fixed order: URLs, RT/cc markers, mentions, hashtags,
// punctuation, non-ASCII, then whitespace collapse and trim. Every removed
// construct becomes a single space before the collapse.
func Clean(text string) string {
	text = reURL.ReplaceAllString(text, " ")
	text = reRetweetCC.ReplaceAllString(text, " ")
	text = reMention.ReplaceAllString(text, " ")
	text = reHashtag.ReplaceAllString(text, " ")
	text = rePunct.ReplaceAllString(text, " ")
	text = reNonASCII.ReplaceAllString(text, " ")
	text = reSpaceRun.ReplaceAllString(text, " ")
	return strings.Trim(text, " ")
}

// IsBlank reports whether s has nothing but whitespace in it.
func IsBlank(s string) bool {
	return strings.TrimSpace(reSpaceRun.ReplaceAllString(s, " ")) == ""
}
