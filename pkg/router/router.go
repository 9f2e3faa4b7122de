package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/narasux/fprim/pkg/envs"
	"github.com/narasux/fprim/pkg/handler"
	"github.com/narasux/fprim/pkg/middleware"
)

// New 创建路由
func New() *gin.Engine {
	gin.SetMode(envs.GinRunMode)
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Cors())
	router.Use(gin.Recovery())

	// 404
	router.NoRoute(handler.Get404)
	// 健康检查
	router.GET("healthz", handler.Healthz)

	// api 路由
	{
		apiRg := router.Group("apis")
		// 元素信息
		apiRg.GET("elements/:symbol", handler.RetrieveElement)
		// 散射因子
		apiRg.GET("scattering-factors", handler.ComputeScatteringFactors)
	}

	return router
}

// Run 启动 web 服务（阻塞）
func Run(addr string) error {
	if err := New().Run(addr); err != nil {
		return errors.Wrap(err, "failed to start server")
	}
	return nil
}
