// Package scattering 提供反常散射因子 f' / f" 的计算
//
// 物理模型本身（如 Cromer-Libermann）不在本项目范围内，Provider 只约定
// "数组进、数组出" 的批量调用方式：同一元素的全部能量一次性计算。
// 默认使用覆盖全部元素的 EdgeModel，指定数据文件时使用 Tabulated。
package scattering

import (
	"math"

	"github.com/pkg/errors"

	"github.com/narasux/fprim/pkg/model"
)

// ErrNoData 数据集中没有该元素
var ErrNoData = errors.New("no scattering data for element")

// ErrOutOfRange 能量超出计算器可处理的范围
var ErrOutOfRange = errors.New("energy out of range")

// ErrBufferSize 结果缓冲区长度与能量序列不一致
var ErrBufferSize = errors.New("result buffer size mismatch")

// Provider 散射因子计算器
//
// Compute 按 energies 的顺序原地填充 fp / fpp，三者长度必须一致。
type Provider interface {
	Compute(z int, energies []float64, fp, fpp []float64) error
}

// ProviderFunc 函数适配器
type ProviderFunc func(z int, energies []float64, fp, fpp []float64) error

// Compute 实现 Provider
func (f ProviderFunc) Compute(z int, energies []float64, fp, fpp []float64) error {
	return f(z, energies, fp, fpp)
}

// ComputeResult 分配零值缓冲区并调用一次 provider
func ComputeResult(p Provider, z int, query model.EnergyQuery) (model.ScatteringResult, error) {
	result := model.NewScatteringResult(len(query))
	if err := p.Compute(z, query, result.FPrime, result.FDoublePrime); err != nil {
		return model.ScatteringResult{}, err
	}
	return result, nil
}

func checkBuffers(energies []float64, fp, fpp []float64) error {
	if len(fp) != len(energies) || len(fpp) != len(energies) {
		return errors.Wrapf(
			ErrBufferSize, "energies: %d, fp: %d, fpp: %d", len(energies), len(fp), len(fpp),
		)
	}
	for _, energy := range energies {
		if energy <= 0 || math.IsNaN(energy) || math.IsInf(energy, 0) {
			return errors.Wrapf(ErrOutOfRange, "%g eV is not a positive finite energy", energy)
		}
	}
	return nil
}
