package scattering

import (
	"math"

	"github.com/pkg/errors"

	"github.com/narasux/fprim/pkg/element"
)

// 四点 Gauss-Legendre 节点与权重（区间 [-1, 1]）
var (
	gaussNodes   = [4]float64{-0.8611363115940526, -0.3399810435848563, 0.3399810435848563, 0.8611363115940526}
	gaussWeights = [4]float64{0.3478548451374538, 0.6521451548625461, 0.6521451548625461, 0.3478548451374538}
)

// 复合积分的分段数
const gaussPanels = 64

// EdgeModel 吸收边振子模型（Hönl 型近似），覆盖全部 118 种元素
//
// 每个壳层视为吸收边以上连续分布的振子，振子密度 g(ω) ∝ ω^-n：
//
//	f"(ω) = π/2 · (n-1) · G · (ω/ωs)^(1-n)，ω > ωs，否则为 0
//	f'(ω) = (n-1) · G · P∫₀¹ u^(n-2) / (a²u² - 1) du，a = ω/ωs
//
// G 为壳层振子强度（每个电子 strength），吸收边处的对数发散按相对宽度 width 展宽。
// 结果与 Cromer-Libermann 表值的偏差约在 10%-20% 量级，K 吸收边位置取实测值。
type EdgeModel struct {
	exponent float64
	strength float64
	width    float64
}

// NewEdgeModel 默认参数：n = 2.7，每个电子振子强度 0.73，展宽 1e-3
func NewEdgeModel() *EdgeModel {
	return &EdgeModel{exponent: 2.7, strength: 0.73, width: 1e-3}
}

// Compute 实现 Provider
func (m *EdgeModel) Compute(z int, energies []float64, fp, fpp []float64) error {
	if err := checkBuffers(energies, fp, fpp); err != nil {
		return err
	}
	if z < 1 || z > element.MaxAtomicNumber {
		return errors.Wrapf(ErrNoData, "Z=%d (edge model covers 1-%d)", z, element.MaxAtomicNumber)
	}

	shells := shellsOf(z)
	for i, energy := range energies {
		for _, s := range shells {
			g := m.strength * float64(s.electrons)
			ratio := energy / s.edge
			fp[i] += m.shellFPrime(g, ratio)
			fpp[i] += m.shellFDoublePrime(g, ratio)
		}
	}
	return nil
}

// 单个壳层的 f"，吸收边以下为 0
func (m *EdgeModel) shellFDoublePrime(g, ratio float64) float64 {
	if ratio <= 1 {
		return 0
	}
	return math.Pi / 2 * (m.exponent - 1) * g * math.Pow(ratio, 1-m.exponent)
}

// 单个壳层的 f'：主值积分在奇点 u0 = 1/a 处减去 h(u0)，剩余部分解析积出
//
//	P∫₀¹ h(u)/(au-1) du = ∫₀¹ (h(u)-h(uc))/(au-1) du + h(uc) · ln|a-1| / a
//
// 其中 h(u) = u^(n-2)/(au+1)，uc = min(1/a, 1)
func (m *EdgeModel) shellFPrime(g, a float64) float64 {
	h := func(u float64) float64 {
		return math.Pow(u, m.exponent-2) / (a*u + 1)
	}
	uc := math.Min(1/a, 1)
	hc := h(uc)

	regular := 0.0
	half := 0.5 / gaussPanels
	for p := 0; p < gaussPanels; p++ {
		mid := (float64(p) + 0.5) / gaussPanels
		for k, node := range gaussNodes {
			u := mid + half*node
			denom := a*u - 1
			if math.Abs(denom) < 1e-12 {
				continue
			}
			regular += gaussWeights[k] * half * (h(u) - hc) / denom
		}
	}

	// ln((a-1)² + (width·a)²)，低能端 a → 0 时极限为 ln|a-1|
	singular := 0.5 * math.Log1p(a*(a*(1+m.width*m.width)-2)) / a
	return g * (m.exponent - 1) * (regular + hc*singular)
}
