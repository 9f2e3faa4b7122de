package model

// ScatteringPoint 某一能量下的参考散射因子
type ScatteringPoint struct {
	Energy       float64 `json:"energy"`
	FPrime       float64 `json:"fp"`
	FDoublePrime float64 `json:"fpp"`
}

// ElementTable 单个元素的参考数据（Points 按能量升序）
type ElementTable struct {
	Symbol       string            `json:"symbol"`
	AtomicNumber int               `json:"atomicNumber"`
	Points       []ScatteringPoint `json:"points"`
}

// ElementTables 元素参考数据列表
type ElementTables []ElementTable

// ScatteringTable 散射因子数据集
type ScatteringTable struct {
	Name     string        `json:"name"`
	Source   string        `json:"source"`
	Elements ElementTables `json:"elements"`
	// Symbols 数据集覆盖的元素符号，由加载器采集
	Symbols []string `json:"-"`
}

// GetByAtomicNumber 根据原子序数获取元素数据
func (ts ElementTables) GetByAtomicNumber(z int) *ElementTable {
	for idx := range ts {
		if ts[idx].AtomicNumber == z {
			return &ts[idx]
		}
	}
	return nil
}
