package runmode

// 取值与 gin 的运行模式保持一致
const (
	// Debug 调试模式
	Debug = "debug"
	// Release 生产模式
	Release = "release"
	// Test 测试模式
	Test = "test"
)
