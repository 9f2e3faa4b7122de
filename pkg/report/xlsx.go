package report

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/narasux/fprim/pkg/model"
)

// XLSXSheetName 工作表名
const XLSXSheetName = "fprim"

var xlsxHeader = []interface{}{"Element", "Z", "E[eV]", "Wavelength[A]", "f'", "f\""}

// XLSXWriter 所有元素写入同一个工作表，Close 时输出工作簿
type XLSXWriter struct {
	w    io.Writer
	file *excelize.File
	// 下一个写入的行号（从 1 开始）
	nextRow int
	err     error
}

// NewXLSXWriter ...
func NewXLSXWriter(w io.Writer) *XLSXWriter {
	x := &XLSXWriter{w: w, file: excelize.NewFile(), nextRow: 1}
	if x.err = x.file.SetSheetName("Sheet1", XLSXSheetName); x.err != nil {
		return x
	}
	x.err = x.appendRow(xlsxHeader)
	return x
}

func (x *XLSXWriter) appendRow(values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, x.nextRow)
	if err != nil {
		return err
	}
	if err = x.file.SetSheetRow(XLSXSheetName, cell, &values); err != nil {
		return err
	}
	x.nextRow++
	return nil
}

// WriteBlock 实现 Writer
func (x *XLSXWriter) WriteBlock(block model.ReportBlock) error {
	if x.err != nil {
		return x.err
	}
	for _, row := range block.Rows {
		values := []interface{}{
			row.Element, block.Element.AtomicNumber, row.Energy, row.Wavelength, row.FPrime, row.FDoublePrime,
		}
		if err := x.appendRow(values); err != nil {
			return errors.Wrap(err, "failed to write xlsx row")
		}
	}
	return nil
}

// Close 实现 Writer
func (x *XLSXWriter) Close() error {
	defer x.file.Close()
	if x.err != nil {
		return x.err
	}
	return errors.Wrap(x.file.Write(x.w), "failed to write xlsx")
}
