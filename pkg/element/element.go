// Package element 将元素符号解析为原子序数
package element

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/narasux/fprim/pkg/model"
)

// ErrUnknownElement 元素符号无法识别
var ErrUnknownElement = errors.New("element name not recognized")

// UnknownElementError 记录无法识别的元素名
type UnknownElementError struct {
	Name string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("element name not recognized: '%s'", e.Name)
}

func (e *UnknownElementError) Unwrap() error {
	return ErrUnknownElement
}

// Resolver 元素解析器
type Resolver interface {
	Resolve(name string) (model.Element, error)
}

// PeriodicTable 基于元素周期表的解析器
type PeriodicTable struct{}

// Resolve 实现 Resolver
func (PeriodicTable) Resolve(name string) (model.Element, error) {
	return Resolve(name)
}

var index = buildIndex()

func buildIndex() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, symbol := range symbols[1:] {
		m[strings.ToLower(symbol)] = z + 1
	}
	m[strings.ToLower(deuterium)] = 1
	return m
}

// Resolve 解析元素符号（不区分大小写），返回规范化的元素；无法识别时返回 UnknownElementError
func Resolve(name string) (model.Element, error) {
	z, ok := index[strings.ToLower(name)]
	if !ok {
		return model.Element{}, &UnknownElementError{Name: name}
	}
	if strings.EqualFold(name, deuterium) {
		return model.Element{Name: deuterium, AtomicNumber: z}, nil
	}
	return model.Element{Name: symbols[z], AtomicNumber: z}, nil
}

// Symbol 获取原子序数对应的元素符号
func Symbol(z int) (string, bool) {
	if z < 1 || z > MaxAtomicNumber {
		return "", false
	}
	return symbols[z], true
}
