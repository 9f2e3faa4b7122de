package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/narasux/fprim/pkg/common/errcode"
	"github.com/narasux/fprim/pkg/element"
	"github.com/narasux/fprim/pkg/logging"
	"github.com/narasux/fprim/pkg/query"
	"github.com/narasux/fprim/pkg/report"
	"github.com/narasux/fprim/pkg/scattering"
	"github.com/narasux/fprim/pkg/storage"
	"github.com/narasux/fprim/pkg/utils/ginx"
)

// RetrieveElement 查询元素符号对应的原子序数
func RetrieveElement(c *gin.Context) {
	elem, err := element.Resolve(c.Param("symbol"))
	if err != nil {
		ginx.SetErrResp(c, http.StatusNotFound, errcode.ElementNotFound, err.Error())
		return
	}
	ginx.SetResp(c, http.StatusOK, elem)
}

// ComputeScatteringFactors 计算散射因子
//
// 查询参数 element / energy / wavelength 均可重复，语义与命令行一致
func ComputeScatteringFactors(c *gin.Context) {
	energies, err := ginx.GetFloatsFromQuery(c, "energy")
	if err != nil {
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidArgument, err.Error())
		return
	}
	wavelengths, err := ginx.GetFloatsFromQuery(c, "wavelength")
	if err != nil {
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidArgument, err.Error())
		return
	}
	names := c.QueryArray("element")
	if len(names) == 0 {
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidArgument, "no element specified")
		return
	}

	provider, err := storage.ScatteringProvider()
	if err != nil {
		setInternalErr(c, err)
		return
	}

	collector := report.NewCollector()
	orchestrator := query.New(element.PeriodicTable{}, provider, collector)
	if err = orchestrator.Run(names, query.Options{Energies: energies, Wavelengths: wavelengths}); err != nil {
		setQueryErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, collector.Blocks())
}

// 按错误类型映射状态码，web 接口不输出部分结果
func setQueryErrResp(c *gin.Context, err error) {
	switch {
	case query.IsUsageError(err), errors.Is(err, scattering.ErrOutOfRange):
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidArgument, err.Error())
	case errors.Is(err, element.ErrUnknownElement):
		ginx.SetErrResp(c, http.StatusNotFound, errcode.ElementNotFound, err.Error())
	case errors.Is(err, scattering.ErrNoData):
		ginx.SetErrResp(c, http.StatusNotFound, errcode.ScatteringDataNotFound, err.Error())
	default:
		setInternalErr(c, err)
	}
}

func setInternalErr(c *gin.Context, err error) {
	ginx.SetError(c, err)
	logging.GetWebLogger().WithField("requestID", ginx.GetRequestID(c)).Errorf("%+v", err)
	ginx.SetErrResp(c, http.StatusInternalServerError, errcode.Unknown, err.Error())
}
