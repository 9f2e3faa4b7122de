package envs

import (
	"github.com/narasux/fprim/pkg/common/runmode"
	"github.com/narasux/fprim/pkg/utils/envx"
)

// 以下变量值可通过环境变量指定
var (
	// LogLevel 日志等级（panic/fatal/error/warn/info/debug/trace）
	LogLevel = envx.Get("FPRIM_LOG_LEVEL", "warn")

	// LogFileBaseDir 日志存放目录，为空则只输出到标准错误
	LogFileBaseDir = envx.Get("FPRIM_LOG_FILE_DIR", "")

	// ScatteringDataFile 散射因子数据文件路径，为空则使用吸收边模型计算
	ScatteringDataFile = envx.Get("FPRIM_DATA_FILE", "")

	// ServerPort web 服务启用端口
	ServerPort = envx.Get("FPRIM_SERVER_PORT", "8080")

	// GinRunMode web 服务运行模式
	GinRunMode = envx.Get("FPRIM_GIN_RUN_MODE", runmode.Release)

	// RealClientIPHeaderKey 反向代理设置的真实客户端 IP 请求头，为空则使用 gin 的默认逻辑
	RealClientIPHeaderKey = envx.Get("FPRIM_REAL_CLIENT_IP_HEADER_KEY", "")
)
