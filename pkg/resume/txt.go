package resume

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

type txtExtractor struct{}

func (txtExtractor) Fragments(data []byte) []string {
	return []string{DecodeText(data)}
}

// DecodeText decodes UTF-8 and falls back to Latin-1 (ISO-8859-1), which
// maps every byte to a rune and so never fails.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	// the Latin-1 decoder maps every byte and never returns an error
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(out)
}
