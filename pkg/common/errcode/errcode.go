package errcode

// ExitFailure 进程失败退出码（对应 shell 中的 255）
const ExitFailure = -1

// web 接口错误码
const (
	// NoErr 无错误
	NoErr = 0

	// InvalidArgument 参数不合法
	InvalidArgument = 40001
	// ElementNotFound 元素无法识别
	ElementNotFound = 40401
	// ScatteringDataNotFound 数据集未覆盖该元素
	ScatteringDataNotFound = 40402

	// Unknown 未知错误
	Unknown = 50001
)
