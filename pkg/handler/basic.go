package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narasux/fprim/pkg/common/errcode"
	"github.com/narasux/fprim/pkg/utils/ginx"
)

func Get404(c *gin.Context) {
	ginx.SetErrResp(c, http.StatusNotFound, errcode.Unknown, "not found")
}

func Healthz(c *gin.Context) {
	ginx.SetResp(c, http.StatusNoContent, nil)
}
