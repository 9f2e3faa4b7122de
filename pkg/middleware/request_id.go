package middleware

import (
	"encoding/hex"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"github.com/narasux/fprim/pkg/utils/ginx"
)

// RequestID 复用客户端传入的 Request ID（32 位十六进制），否则生成新的
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(ginx.RequestIDHeaderKey)
		if !isValidRequestID(requestID) {
			requestID = newRequestID()
		}
		ginx.SetRequestID(c, requestID)
		c.Writer.Header().Set(ginx.RequestIDHeaderKey, requestID)

		c.Next()
	}
}

func newRequestID() string {
	return hex.EncodeToString(uuid.Must(uuid.NewV4()).Bytes())
}

func isValidRequestID(requestID string) bool {
	if len(requestID) != 32 {
		return false
	}
	_, err := hex.DecodeString(requestID)
	return err == nil
}
