package ginx

import (
	"github.com/gin-gonic/gin"

	"github.com/narasux/fprim/pkg/envs"
)

const (
	// RequestIDKey ...
	RequestIDKey = "requestID"
	// ClientIDKey ...
	ClientIDKey = "clientID"
	// ErrorKey ...
	ErrorKey = "error"
)

// GetRequestID ...
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// SetRequestID ...
func SetRequestID(c *gin.Context, requestID string) {
	c.Set(RequestIDKey, requestID)
}

// GetClientID ...
func GetClientID(c *gin.Context) string {
	return c.GetString(ClientIDKey)
}

// SetClientID ...
func SetClientID(c *gin.Context, clientID string) {
	c.Set(ClientIDKey, clientID)
}

// GetClientIP 获取客户端 IP，优先使用反向代理设置的请求头
func GetClientIP(c *gin.Context) string {
	if envs.RealClientIPHeaderKey != "" {
		return c.GetHeader(envs.RealClientIPHeaderKey)
	}
	return c.ClientIP()
}

// GetError ...
func GetError(c *gin.Context) (any, bool) {
	return c.Get(ErrorKey)
}

// SetError ...
func SetError(c *gin.Context, err error) {
	c.Set(ErrorKey, err)
}
