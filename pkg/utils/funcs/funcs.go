package funcs

import (
	"strconv"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/narasux/fprim/pkg/units"
)

// NewFuncMap 报告模板可用的函数，在 sprig 的基础上补充几个领域函数
func NewFuncMap() template.FuncMap {
	funcMap := sprig.FuncMap()
	// hc 常数（eV·Å）
	funcMap["hc"] = func() float64 {
		return units.HC
	}
	// 保留 n 位有效数字
	funcMap["sig"] = func(n int, v float64) string {
		return strconv.FormatFloat(v, 'g', n, 64)
	}
	return funcMap
}
