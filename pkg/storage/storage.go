package storage

import (
	"sync"

	"github.com/narasux/fprim/pkg/envs"
	"github.com/narasux/fprim/pkg/loader"
	"github.com/narasux/fprim/pkg/scattering"
)

var (
	provider scattering.Provider
	initErr  error
)

var initOnce sync.Once

// ScatteringProvider 返回散射因子计算器（进程内只初始化一次）
//
// 配置 FPRIM_DATA_FILE 时在该数据集上插值，否则使用覆盖全部元素的吸收边模型
func ScatteringProvider() (scattering.Provider, error) {
	initOnce.Do(func() {
		provider, initErr = newProvider(envs.ScatteringDataFile)
	})
	return provider, initErr
}

func newProvider(dataFile string) (scattering.Provider, error) {
	if dataFile == "" {
		return scattering.NewEdgeModel(), nil
	}
	table, err := loader.New(dataFile).Exec()
	if err != nil {
		return nil, err
	}
	return scattering.NewTabulated(table), nil
}
