package report

import (
	"io"
	"text/template"

	"github.com/pkg/errors"

	"github.com/narasux/fprim/pkg/model"
	"github.com/narasux/fprim/pkg/utils/funcs"
)

// TemplateWriter 每行执行一次用户模板，模板数据为 model.ReportRow
type TemplateWriter struct {
	w    io.Writer
	tmpl *template.Template
}

// NewTemplateWriter 模板末尾自动补充换行
func NewTemplateWriter(w io.Writer, text string) (*TemplateWriter, error) {
	if text == "" {
		return nil, ErrEmptyTemplate
	}
	tmpl, err := template.New("row").Funcs(funcs.NewFuncMap()).Parse(text + "\n")
	if err != nil {
		return nil, errors.Wrap(err, "invalid report template")
	}
	return &TemplateWriter{w: w, tmpl: tmpl}, nil
}

// WriteBlock 实现 Writer
func (t *TemplateWriter) WriteBlock(block model.ReportBlock) error {
	for _, row := range block.Rows {
		if err := t.tmpl.Execute(t.w, row); err != nil {
			return errors.Wrapf(err, "failed to render row of %s", row.Element)
		}
	}
	return nil
}

// Close 实现 Writer
func (t *TemplateWriter) Close() error {
	return nil
}
