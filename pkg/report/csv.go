package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/narasux/fprim/pkg/model"
)

var csvHeader = []string{"element", "atomic_number", "energy_ev", "wavelength_a", "fp", "fpp"}

// CSVWriter 只输出一次表头，数值保留完整精度
type CSVWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewCSVWriter ...
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

func (c *CSVWriter) writeHeader() error {
	if c.wroteHeader {
		return nil
	}
	c.wroteHeader = true
	return c.w.Write(csvHeader)
}

// WriteBlock 实现 Writer
func (c *CSVWriter) WriteBlock(block model.ReportBlock) error {
	if err := c.writeHeader(); err != nil {
		return err
	}
	z := strconv.Itoa(block.Element.AtomicNumber)
	for _, row := range block.Rows {
		record := []string{
			row.Element, z,
			formatFloat(row.Energy), formatFloat(row.Wavelength),
			formatFloat(row.FPrime), formatFloat(row.FDoublePrime),
		}
		if err := c.w.Write(record); err != nil {
			return err
		}
	}
	// 按元素刷新，保持逐块输出
	c.w.Flush()
	return c.w.Error()
}

// Close 实现 Writer
func (c *CSVWriter) Close() error {
	if err := c.writeHeader(); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
