// Package query 按元素批量查询散射因子并输出报告
package query

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/narasux/fprim/pkg/element"
	"github.com/narasux/fprim/pkg/logging"
	"github.com/narasux/fprim/pkg/model"
	"github.com/narasux/fprim/pkg/report"
	"github.com/narasux/fprim/pkg/scattering"
	"github.com/narasux/fprim/pkg/units"
)

// Orchestrator 查询编排：解析元素 -> 构建能量序列 -> 单次批量计算 -> 输出报告块
type Orchestrator struct {
	resolver element.Resolver
	provider scattering.Provider
	writer   report.Writer
}

// New ...
func New(resolver element.Resolver, provider scattering.Provider, writer report.Writer) *Orchestrator {
	return &Orchestrator{resolver: resolver, provider: provider, writer: writer}
}

// Run 按顺序处理每个元素，遇到第一个错误立即返回（已输出的元素块保留）
//
// writer 的 Close 由调用方负责。
func (o *Orchestrator) Run(names []string, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	for _, name := range names {
		if err := o.runElement(name, opts); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) runElement(name string, opts Options) error {
	elem, err := o.resolver.Resolve(name)
	if err != nil {
		return err
	}

	query := opts.EnergyQuery()
	logging.GetSystemLogger().WithFields(logrus.Fields{
		"element": elem.Name,
		"z":       elem.AtomicNumber,
		"count":   len(query),
	}).Debug("computing scattering factors")

	result, err := scattering.ComputeResult(o.provider, elem.AtomicNumber, query)
	if err != nil {
		return errors.Wrapf(err, "failed to compute scattering factors for %s", elem.Name)
	}
	if err = o.writer.WriteBlock(BuildBlock(elem, query, result)); err != nil {
		return errors.Wrapf(err, "failed to write report for %s", elem.Name)
	}
	return nil
}

// BuildBlock 按位置组装报告行，波长由能量重新换算
func BuildBlock(elem model.Element, query model.EnergyQuery, result model.ScatteringResult) model.ReportBlock {
	rows := lo.Map(query, func(energy float64, i int) model.ReportRow {
		return model.ReportRow{
			Element:      elem.Name,
			Energy:       energy,
			Wavelength:   units.EnergyToWavelength(energy),
			FPrime:       result.FPrime[i],
			FDoublePrime: result.FDoublePrime[i],
		}
	})
	return model.ReportBlock{Element: elem, Rows: rows}
}
