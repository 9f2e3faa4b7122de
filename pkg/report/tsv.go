package report

import (
	"fmt"
	"io"

	"github.com/narasux/fprim/pkg/model"
)

// TSVHeader 每个元素块前输出的表头
const TSVHeader = "Element\tE[eV]\tWavelength[A]\tf'\tf\"\n"

// 能量与波长保留 6 位有效数字，f' / f" 保留 5 位
const tsvRowFormat = "%s\t%.6g\t%-9.6g\t%.5g\t%.5g\n"

// TSVWriter 逐块写出，不做跨元素缓冲
type TSVWriter struct {
	w io.Writer
}

// NewTSVWriter ...
func NewTSVWriter(w io.Writer) *TSVWriter {
	return &TSVWriter{w: w}
}

// WriteBlock 实现 Writer
func (t *TSVWriter) WriteBlock(block model.ReportBlock) error {
	if _, err := io.WriteString(t.w, TSVHeader); err != nil {
		return err
	}
	for _, row := range block.Rows {
		if _, err := io.WriteString(t.w, FormatTSVRow(row)); err != nil {
			return err
		}
	}
	return nil
}

// Close 实现 Writer
func (t *TSVWriter) Close() error {
	return nil
}

// FormatTSVRow 渲染单行（含换行符）
func FormatTSVRow(row model.ReportRow) string {
	return fmt.Sprintf(tsvRowFormat, row.Element, row.Energy, row.Wavelength, row.FPrime, row.FDoublePrime)
}
