package model

import "fmt"

// Element 元素（解析后不可变，按值传递）
type Element struct {
	// Name 规范化后的元素符号，如 Fe
	Name string `json:"name"`
	// AtomicNumber 原子序数
	AtomicNumber int `json:"atomicNumber"`
}

func (e Element) String() string {
	return fmt.Sprintf("%s(Z=%d)", e.Name, e.AtomicNumber)
}
