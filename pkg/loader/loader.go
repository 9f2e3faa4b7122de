package loader

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/TencentBlueKing/gopkg/collection/set"
	"github.com/pkg/errors"

	"github.com/narasux/fprim/pkg/element"
	"github.com/narasux/fprim/pkg/model"
)

// ScatteringLoader 散射因子数据加载器
type ScatteringLoader struct {
	path    string
	content []byte
	table   model.ScatteringTable
}

// New 创建加载器，path 为 JSON 数据集文件路径
func New(path string) *ScatteringLoader {
	return &ScatteringLoader{path: path}
}

func (l *ScatteringLoader) Exec() (*model.ScatteringTable, error) {
	for _, f := range []func() error{
		l.loadContent,
		l.decodeTable,
		l.sortPoints,
		l.checkElements,
		l.collectSymbols,
	} {
		if err := f(); err != nil {
			return nil, err
		}
	}
	return &l.table, nil
}

// 读取数据集原始内容
func (l *ScatteringLoader) loadContent() error {
	content, err := os.ReadFile(l.path)
	if err != nil {
		return errors.Wrapf(err, "failed to read scattering data file %s", l.path)
	}
	l.content = content
	return nil
}

// 反序列化数据集
func (l *ScatteringLoader) decodeTable() error {
	if err := json.Unmarshal(l.content, &l.table); err != nil {
		return errors.Wrap(err, "failed to decode scattering data")
	}
	return nil
}

// 参考点按能量升序排列，插值依赖该顺序
func (l *ScatteringLoader) sortPoints() error {
	for idx := range l.table.Elements {
		points := l.table.Elements[idx].Points
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].Energy < points[j].Energy
		})
	}
	return nil
}

// 校验元素符号与原子序数一致，且每个元素至少有一个参考点
func (l *ScatteringLoader) checkElements() error {
	for _, table := range l.table.Elements {
		elem, err := element.Resolve(table.Symbol)
		if err != nil {
			return errors.Wrap(err, "invalid scattering data")
		}
		if elem.AtomicNumber != table.AtomicNumber {
			return errors.Errorf(
				"invalid scattering data: %s has atomic number %d, got %d",
				elem.Name, elem.AtomicNumber, table.AtomicNumber,
			)
		}
		if len(table.Points) == 0 {
			return errors.Errorf("invalid scattering data: %s has no points", elem.Name)
		}
	}
	return nil
}

// 采集数据集覆盖的元素符号
func (l *ScatteringLoader) collectSymbols() error {
	symbols := set.NewStringSet()
	for _, table := range l.table.Elements {
		symbols.Append(table.Symbol)
	}
	l.table.Symbols = symbols.ToSlice()
	sort.Strings(l.table.Symbols)
	return nil
}
