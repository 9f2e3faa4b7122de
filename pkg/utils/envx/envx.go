package envx

import "os"

// Get 获取环境变量值，未设置时返回默认值
func Get(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
