// Package report 将散射因子查询结果渲染为不同格式的报告
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/narasux/fprim/pkg/model"
)

// Format 报告格式
type Format string

const (
	// FormatTSV 制表符分隔，每个元素单独输出表头（默认）
	FormatTSV Format = "tsv"
	// FormatCSV 逗号分隔，仅输出一次表头
	FormatCSV Format = "csv"
	// FormatJSON 按元素分块的 JSON 数组
	FormatJSON Format = "json"
	// FormatHTML 由 markdown 表格渲染的 HTML
	FormatHTML Format = "html"
	// FormatXLSX Excel 工作簿，必须输出到文件
	FormatXLSX Format = "xlsx"
	// FormatTemplate 用户自定义的逐行模板
	FormatTemplate Format = "template"
)

// Formats 支持的全部格式
var Formats = []Format{FormatTSV, FormatCSV, FormatJSON, FormatHTML, FormatXLSX, FormatTemplate}

// ErrUnknownFormat 不支持的报告格式
var ErrUnknownFormat = errors.New("unknown report format")

// ErrEmptyTemplate template 格式未提供模板
var ErrEmptyTemplate = errors.New("template format requires a template")

// Writer 报告输出器，WriteBlock 按元素顺序调用，结束后必须调用 Close
type Writer interface {
	WriteBlock(block model.ReportBlock) error
	Close() error
}

// Options 报告选项
type Options struct {
	// Template 仅 template 格式使用
	Template string
}

// ParseFormat 解析格式名（不区分大小写）
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(name))
	if !lo.Contains(Formats, format) {
		return "", errors.Wrapf(ErrUnknownFormat, "%s (must be one of %s)", name, FormatNames())
	}
	return format, nil
}

// FormatNames 以逗号拼接的格式名，用于帮助信息
func FormatNames() string {
	return strings.Join(lo.Map(Formats, func(f Format, _ int) string { return string(f) }), ", ")
}

// New 创建指定格式的报告输出器
func New(format Format, w io.Writer, opts Options) (Writer, error) {
	switch format {
	case FormatTSV:
		return NewTSVWriter(w), nil
	case FormatCSV:
		return NewCSVWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatHTML:
		return NewHTMLWriter(w), nil
	case FormatXLSX:
		return NewXLSXWriter(w), nil
	case FormatTemplate:
		writer, err := NewTemplateWriter(w, opts.Template)
		if err != nil {
			return nil, err
		}
		return writer, nil
	}
	return nil, errors.Wrap(ErrUnknownFormat, fmt.Sprint(format))
}

// Collector 收集全部报告块，供 JSON 等需要完整数据的格式及 web 接口使用
type Collector struct {
	blocks []model.ReportBlock
}

// NewCollector ...
func NewCollector() *Collector {
	return &Collector{blocks: []model.ReportBlock{}}
}

// WriteBlock 实现 Writer
func (c *Collector) WriteBlock(block model.ReportBlock) error {
	c.blocks = append(c.blocks, block)
	return nil
}

// Close 实现 Writer
func (c *Collector) Close() error {
	return nil
}

// Blocks 已收集的报告块
func (c *Collector) Blocks() []model.ReportBlock {
	return c.blocks
}
