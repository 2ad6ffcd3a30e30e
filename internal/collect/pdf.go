package collect

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractFirstPageText pulls the text layer of a notice PDF's first page,
// preserving row structure so the label patterns see line boundaries.
// Scanned or malformed documents yield "". The pdf library panics on some
// malformed files, hence the recover.
func extractFirstPageText(blob []byte) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil || r.NumPage() < 1 {
		return ""
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return ""
	}
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, row := range rows {
		for _, word := range row.Content {
			b.WriteString(word.S)
		}
		b.WriteString("\n")
	}
	return b.String()
}
