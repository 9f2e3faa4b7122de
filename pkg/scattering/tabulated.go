package scattering

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/narasux/fprim/pkg/model"
)

// Tabulated 基于参考数据点的计算器：数据范围内按能量线性插值，范围外返回 ErrOutOfRange
//
// 插值不识别吸收边，数据点需在吸收边两侧足够密集。
type Tabulated struct {
	table *model.ScatteringTable
}

// NewTabulated ...
func NewTabulated(table *model.ScatteringTable) *Tabulated {
	return &Tabulated{table: table}
}

// Compute 实现 Provider，任一能量超出范围时整批失败
func (p *Tabulated) Compute(z int, energies []float64, fp, fpp []float64) error {
	if err := checkBuffers(energies, fp, fpp); err != nil {
		return err
	}
	elemTable := p.table.Elements.GetByAtomicNumber(z)
	if elemTable == nil {
		return errors.Wrapf(ErrNoData, "Z=%d (dataset %s covers %v)", z, p.table.Name, p.table.Symbols)
	}

	points := elemTable.Points
	lowest, highest := points[0].Energy, points[len(points)-1].Energy
	for _, energy := range energies {
		if energy < lowest || energy > highest {
			return errors.Wrapf(
				ErrOutOfRange, "%g eV (dataset %s covers %s from %g to %g eV)",
				energy, p.table.Name, elemTable.Symbol, lowest, highest,
			)
		}
	}

	for i, energy := range energies {
		point := interpolate(points, energy)
		fp[i], fpp[i] = point.FPrime, point.FDoublePrime
	}
	return nil
}

// 在升序排列的参考点中插值，energy 须位于数据范围内
func interpolate(points []model.ScatteringPoint, energy float64) model.ScatteringPoint {
	idx := sort.Search(len(points), func(i int) bool {
		return points[i].Energy >= energy
	})
	if points[idx].Energy == energy {
		return points[idx]
	}

	below, above := points[idx-1], points[idx]
	t := (energy - below.Energy) / (above.Energy - below.Energy)
	return model.ScatteringPoint{
		Energy:       energy,
		FPrime:       below.FPrime + t*(above.FPrime-below.FPrime),
		FDoublePrime: below.FDoublePrime + t*(above.FDoublePrime-below.FDoublePrime),
	}
}
