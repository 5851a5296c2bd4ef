package resume

import (
	"strings"
)

// Supported extensions.
const (
	ExtPDF  = "pdf"
	ExtDOCX = "docx"
	ExtTXT  = "txt"
)

// TextExtractor produces the text fragments of one document format, in
// source order (pages for PDF, paragraphs for DOCX). An unreadable
// fragment is returned as "", an unreadable document as no fragments.
// Implementations never panic and never fail.
type TextExtractor interface {
	Fragments(data []byte) []string
}

// Extraction is the result of running a document through the Parser.
type Extraction struct {
	Extension string
	Supported bool
	Fragments int
	Text      string
}

// Parser selects a TextExtractor by file extension.
type Parser struct {
	extractors map[string]TextExtractor
}

// NewParser returns a parser for pdf, docx and txt documents.
func NewParser() *Parser {
	return &Parser{extractors: map[string]TextExtractor{
		ExtPDF:  pdfExtractor{},
		ExtDOCX: docxExtractor{},
		ExtTXT:  txtExtractor{},
	}}
}

// Supports reports whether ext has an extractor.
func (p *Parser) Supports(ext string) bool {
	_, ok := p.extractors[ext]
	return ok
}

// Extract returns the document text; fragments are joined with single
// spaces. Unsupported extensions yield "".
func (p *Parser) Extract(data []byte, ext string) string {
	return p.ExtractDetailed(data, ext).Text
}

// ExtractDetailed is Extract plus the bookkeeping callers log and report.
func (p *Parser) ExtractDetailed(data []byte, ext string) Extraction {
	ex, ok := p.extractors[ext]
	if !ok {
		return Extraction{Extension: ext}
	}
	frags := ex.Fragments(data)
	return Extraction{
		Extension: ext,
		Supported: true,
		Fragments: len(frags),
		Text:      strings.Join(frags, " "),
	}
}

// ExtensionFromFilename returns the lowercased part after the final dot.
// A name without a dot is returned whole, lowercased.
func ExtensionFromFilename(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}
