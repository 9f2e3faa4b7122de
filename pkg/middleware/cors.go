package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/narasux/fprim/pkg/utils/ginx"
)

// Cors 接口只读，允许任意来源访问
func Cors() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", ginx.RequestIDHeaderKey},
		ExposeHeaders:   []string{ginx.RequestIDHeaderKey},
		MaxAge:          12 * time.Hour,
	})
}
