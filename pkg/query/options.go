package query

import (
	"math"

	"github.com/samber/lo"

	"github.com/narasux/fprim/pkg/model"
	"github.com/narasux/fprim/pkg/units"
)

// Options 能量输入，两组各自保持命令行中的出现顺序
type Options struct {
	// Energies 能量（eV）
	Energies []float64
	// Wavelengths 波长（Å）
	Wavelengths []float64
}

// Validate 至少提供一个能量或波长，且所有取值均为有限正数
func (o Options) Validate() error {
	if len(o.Energies) == 0 && len(o.Wavelengths) == 0 {
		return ErrNoEnergy
	}
	groups := []struct {
		kind   string
		values []float64
	}{
		{"energy", o.Energies},
		{"wavelength", o.Wavelengths},
	}
	for _, g := range groups {
		if v, found := lo.Find(g.values, func(v float64) bool { return !isPositiveFinite(v) }); found {
			return NewInvalidValueError(g.kind, v)
		}
	}
	return nil
}

// EnergyQuery 先是全部能量，随后是由波长换算得到的能量；每次调用返回新的切片
func (o Options) EnergyQuery() model.EnergyQuery {
	return lo.Flatten([][]float64{o.Energies, units.WavelengthsToEnergies(o.Wavelengths)})
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
