package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/narasux/fprim/pkg/model"
	"github.com/narasux/fprim/pkg/utils/markdownx"
)

// HTMLWriter 先拼接 markdown 表格，Close 时统一渲染为 HTML
type HTMLWriter struct {
	w  io.Writer
	md strings.Builder
}

// NewHTMLWriter ...
func NewHTMLWriter(w io.Writer) *HTMLWriter {
	return &HTMLWriter{w: w}
}

// WriteBlock 实现 Writer
func (h *HTMLWriter) WriteBlock(block model.ReportBlock) error {
	fmt.Fprintf(&h.md, "## %s (Z=%d)\n\n", block.Element.Name, block.Element.AtomicNumber)
	h.md.WriteString("| E (eV) | Wavelength (Å) | f' | f\" |\n|---|---|---|---|\n")
	for _, row := range block.Rows {
		fmt.Fprintf(&h.md, "| %.6g | %.6g | %.5g | %.5g |\n", row.Energy, row.Wavelength, row.FPrime, row.FDoublePrime)
	}
	h.md.WriteString("\n")
	return nil
}

// Close 实现 Writer
func (h *HTMLWriter) Close() error {
	_, err := io.WriteString(h.w, markdownx.ToHTML([]byte(h.md.String())))
	return err
}
