package resume

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

const docxMainPart = "word/document.xml"

// maxDocumentXML caps the uncompressed size of word/document.xml.
var maxDocumentXML int64 = 32 << 20

var errDocumentTooLarge = errors.New("docx document.xml exceeds size limit")

type docxExtractor struct{}

func (docxExtractor) Fragments(data []byte) []string {
	frags, err := docxParagraphs(data)
	if err != nil {
		log.Debug().Err(err).Msg("docx unreadable")
		return nil
	}
	return frags
}

func docxParagraphs(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.Name != docxMainPart {
			continue
		}
		if f.UncompressedSize64 > uint64(maxDocumentXML) {
			return nil, errDocumentTooLarge
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		// the header size may lie; the reader enforces the cap as well
		return bodyParagraphs(&cappedReader{r: rc, left: maxDocumentXML})
	}
	return nil, errors.New("no document.xml found in docx")
}

// cappedReader fails with errDocumentTooLarge once more than left bytes
// have been read.
type cappedReader struct {
	r    io.Reader
	left int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.left <= 0 {
		// a document of exactly the cap must still reach io.EOF
		var one [1]byte
		n, err := c.r.Read(one[:])
		if n > 0 {
			return 0, errDocumentTooLarge
		}
		return 0, err
	}
	if int64(len(p)) > c.left {
		p = p[:c.left]
	}
	n, err := c.r.Read(p)
	c.left -= int64(n)
	return n, err
}

// bodyParagraphs walks document.xml and returns the text of each paragraph
// that is a direct child of w:body. Table cells, text boxes and other
// nested paragraphs are not part of that list. Run content maps as
// w:t → text, w:tab → "\t", w:br and w:cr → "\n".
// A paragraph cut short by malformed XML is returned as "" and the walk
// stops. Only errDocumentTooLarge is reported as an error.
func bodyParagraphs(doc io.Reader) ([]string, error) {
	dec := xml.NewDecoder(doc)
	var (
		out    []string
		stack  []string
		para   strings.Builder
		inPara bool
		inText bool
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, errDocumentTooLarge) {
				return nil, err
			}
			if !errors.Is(err, io.EOF) {
				log.Debug().Err(err).Int("paragraphs", len(out)).Msg("docx xml truncated")
			}
			if inPara {
				out = append(out, "")
			}
			return out, nil
		}
		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			switch {
			case t.Name.Local == "p" && len(stack) == 3 && stack[1] == "body":
				inPara = true
				para.Reset()
			case !inPara || len(stack) <= 3 || !isRunChild(stack[3:]):
			case t.Name.Local == "t":
				inText = true
			case t.Name.Local == "tab":
				para.WriteByte('\t')
			case t.Name.Local == "br", t.Name.Local == "cr":
				para.WriteByte('\n')
			}
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			switch {
			case t.Name.Local == "t":
				inText = false
			case t.Name.Local == "p" && inPara && len(stack) == 3:
				out = append(out, para.String())
				inPara = false
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if inPara && inText {
				para.Write(t)
			}
		}
	}
}

// isRunChild reports whether path (relative to the paragraph) is a run
// child of the paragraph itself or of one of its hyperlinks.
func isRunChild(path []string) bool {
	switch len(path) {
	case 2:
		return path[0] == "r"
	case 3:
		return path[0] == "hyperlink" && path[1] == "r"
	}
	return false
}
