package report

import (
	"encoding/json"
	"io"
)

// JSONWriter 收集全部元素块，Close 时输出
type JSONWriter struct {
	*Collector
	w io.Writer
}

// NewJSONWriter ...
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{Collector: NewCollector(), w: w}
}

// Close 实现 Writer
func (j *JSONWriter) Close() error {
	encoder := json.NewEncoder(j.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(j.Blocks())
}
