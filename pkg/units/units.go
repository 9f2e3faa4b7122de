// Package units 提供光子能量与波长之间的换算
package units

import "github.com/samber/lo"

// HC 普朗克常数与光速之积，单位 eV·Å
// $ units -d15 'h * c / eV / angstrom'
const HC = 12398.4197386209

// WavelengthToEnergy 波长（Å）转换为光子能量（eV），不校验取值范围
func WavelengthToEnergy(wavelength float64) float64 {
	return HC / wavelength
}

// EnergyToWavelength 光子能量（eV）转换为波长（Å），不校验取值范围
func EnergyToWavelength(energy float64) float64 {
	return HC / energy
}

// WavelengthsToEnergies 批量转换，保持输入顺序
func WavelengthsToEnergies(wavelengths []float64) []float64 {
	return lo.Map(wavelengths, func(wavelength float64, _ int) float64 {
		return WavelengthToEnergy(wavelength)
	})
}
