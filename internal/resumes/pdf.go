package resumes

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

const mimePDF = "application/pdf"

// checkPDF verifies the payload is a structurally valid PDF with at least one
// page. Uploads are PDF-only; a corrupt file would otherwise surface much
// later as a confusing collaborator failure.
func checkPDF(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty file", ErrNotPDF)
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotPDF, err)
	}
	if reader.NumPage() < 1 {
		return fmt.Errorf("%w: no pages", ErrNotPDF)
	}
	return nil
}
