package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/fprim/pkg/common/errcode"
	"github.com/narasux/fprim/pkg/element"
	"github.com/narasux/fprim/pkg/query"
	"github.com/narasux/fprim/pkg/scattering"
)

func TestSetQueryErrResp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   int
	}{
		{query.ErrNoEnergy, http.StatusBadRequest, errcode.InvalidArgument},
		{errors.Wrap(scattering.ErrOutOfRange, "100 eV"), http.StatusBadRequest, errcode.InvalidArgument},
		{&element.UnknownElementError{Name: "Xx"}, http.StatusNotFound, errcode.ElementNotFound},
		{errors.Wrap(scattering.ErrNoData, "Z=79"), http.StatusNotFound, errcode.ScatteringDataNotFound},
		{errors.New("boom"), http.StatusInternalServerError, errcode.Unknown},
	}
	for _, c := range cases {
		recorder := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(recorder)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/apis/scattering-factors", nil)

		setQueryErrResp(ctx, c.err)

		var resp struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, c.status, recorder.Code, c.err.Error())
		assert.Equal(t, c.code, resp.Code, c.err.Error())
		assert.Equal(t, c.err.Error(), resp.Message)
	}
}
