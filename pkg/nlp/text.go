package nlp

import (
	"regexp"
	"strings"
)

// DefaultTokenPattern selects tokens of two or more word characters.
const DefaultTokenPattern = `\b\w\w+\b`

// CompileTokenPattern compiles a token regexp exported by the training
// tooling. Inline flags RE2 does not know about ("(?u)") are dropped; the
// text reaching the tokenizer is ASCII after Clean, so they change nothing.
func CompileTokenPattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = DefaultTokenPattern
	}
	pattern = strings.ReplaceAll(pattern, "(?u)", "")
	return regexp.Compile(pattern)
}

// Tokens возвращает токены текста в порядке появления.
// A pattern with exactly one capture group yields the group, not the match.
func Tokens(re *regexp.Regexp, text string) []string {
	if text == "" {
		return []string{}
	}
	if re.NumSubexp() == 1 {
		matches := re.FindAllStringSubmatch(text, -1)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, m[1])
		}
		return out
	}
	return re.FindAllString(text, -1)
}

// WithoutStopWords drops tokens present in stop.
func WithoutStopWords(tokens []string, stop map[string]struct{}) []string {
	if len(stop) == 0 {
		return tokens
	}
	out := tokens[:0:0]
	for _, t := range tokens {
		if _, ok := stop[t]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

// NGrams expands tokens into word n-grams for every n in [minN, maxN],
// joining the words of each n-gram with a single space.
func NGrams(tokens []string, minN, maxN int) []string {
	if minN < 1 {
		minN = 1
	}
	if maxN < minN {
		maxN = minN
	}
	if minN == 1 && maxN == 1 {
		return tokens
	}
	var out []string
	if minN == 1 {
		out = append(out, tokens...)
		minN = 2
	}
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
