package resume

import (
	"bytes"
	"fmt"

	pdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"
)

func init() {
	// pdfcpu would otherwise create a config directory under $HOME.
	api.DisableConfigDir()
}

type pdfExtractor struct{}

func (pdfExtractor) Fragments(data []byte) []string {
	r, err := openPDF(data)
	if err != nil {
		repaired, rerr := repairPDF(data)
		if rerr != nil {
			log.Debug().Err(err).AnErr("repair", rerr).Msg("pdf unreadable")
			return nil
		}
		if r, err = openPDF(repaired); err != nil {
			log.Debug().Err(err).Msg("pdf unreadable after repair")
			return nil
		}
	}
	n := numPages(r)
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		pages = append(pages, pageText(r, i))
	}
	return pages
}

func openPDF(data []byte) (r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r, err = nil, fmt.Errorf("pdf reader: %v", rec)
		}
	}()
	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}

func numPages(r *pdf.Reader) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()
	return r.NumPage()
}

// pageText returns "" for a page whose content cannot be decoded.
func pageText(r *pdf.Reader, i int) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Debug().Int("page", i).Interface("panic", rec).Msg("pdf page skipped")
			text = ""
		}
	}()
	p := r.Page(i)
	if p.V.IsNull() {
		return ""
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		log.Debug().Int("page", i).Err(err).Msg("pdf page skipped")
		return ""
	}
	return text
}

// repairPDF rewrites a damaged document (broken xref, stray bytes) with
// relaxed validation so the text reader gets a clean cross-reference table.
func repairPDF(data []byte) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, fmt.Errorf("pdf repair: %v", rec)
		}
	}()
	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed
	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &buf, conf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
