package model

// EnergyQuery 单个元素的能量查询序列（eV），与结果序列按位置一一对应
type EnergyQuery []float64

// ScatteringResult 散射因子计算结果，FPrime[i] / FDoublePrime[i] 对应 EnergyQuery[i]
type ScatteringResult struct {
	FPrime       []float64 `json:"fp"`
	FDoublePrime []float64 `json:"fpp"`
}

// NewScatteringResult 按查询长度分配零值结果缓冲区
func NewScatteringResult(n int) ScatteringResult {
	return ScatteringResult{
		FPrime:       make([]float64, n),
		FDoublePrime: make([]float64, n),
	}
}

// ReportRow 报告行，Wavelength 总是由 Energy 重新换算得到
type ReportRow struct {
	Element      string  `json:"element"`
	Energy       float64 `json:"energy"`
	Wavelength   float64 `json:"wavelength"`
	FPrime       float64 `json:"fp"`
	FDoublePrime float64 `json:"fpp"`
}

// ReportBlock 单个元素的报告块
type ReportBlock struct {
	Element Element     `json:"element"`
	Rows    []ReportRow `json:"rows"`
}
