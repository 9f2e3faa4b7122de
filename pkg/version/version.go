package version

import (
	"fmt"
	"runtime"

	rt "github.com/narasux/fprim/pkg/common/runtime"
)

// 以下变量值可通过 --ldflags 的方式修改
var (
	// Version 版本号
	Version = "0.1.0"
	// GitCommit 提交哈希
	GitCommit = "unknown"
	// BuildTime 构建时间
	BuildTime = "unknown"
	// GoVersion 构建使用的 Go 版本
	GoVersion = runtime.Version()
)

// GetVersion 获取完整的版本信息
func GetVersion() string {
	return fmt.Sprintf(
		"Version: %s\nGitCommit: %s\nBuildTime: %s\nGoVersion: %s\nRunMode: %s",
		Version, GitCommit, BuildTime, GoVersion, rt.RunMode,
	)
}
