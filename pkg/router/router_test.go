package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/fprim/pkg/common/errcode"
	"github.com/narasux/fprim/pkg/common/runmode"
	"github.com/narasux/fprim/pkg/envs"
	"github.com/narasux/fprim/pkg/model"
)

type response struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"requestID"`
}

func doGet(t *testing.T, target string) (*httptest.ResponseRecorder, response) {
	envs.GinRunMode = runmode.Test
	recorder := httptest.NewRecorder()
	New().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	var resp response
	if recorder.Code != http.StatusNoContent {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	}
	return recorder, resp
}

func TestHealthz(t *testing.T) {
	recorder, _ := doGet(t, "/healthz")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestNoRoute(t *testing.T) {
	recorder, resp := doGet(t, "/not-exists")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Len(t, resp.RequestID, 32)
}

func TestRetrieveElement(t *testing.T) {
	recorder, resp := doGet(t, "/apis/elements/fe")
	require.Equal(t, http.StatusOK, recorder.Code)

	var elem model.Element
	require.NoError(t, json.Unmarshal(resp.Data, &elem))
	assert.Equal(t, model.Element{Name: "Fe", AtomicNumber: 26}, elem)

	recorder, resp = doGet(t, "/apis/elements/Xx")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, errcode.ElementNotFound, resp.Code)
}

func TestComputeScatteringFactors(t *testing.T) {
	recorder, resp := doGet(t, "/apis/scattering-factors?element=Fe&element=Zn&energy=100&energy=200&wavelength=1")
	require.Equal(t, http.StatusOK, recorder.Code)

	var blocks []model.ReportBlock
	require.NoError(t, json.Unmarshal(resp.Data, &blocks))
	require.Len(t, blocks, 2)
	assert.Equal(t, "Fe", blocks[0].Element.Name)
	assert.Equal(t, "Zn", blocks[1].Element.Name)

	energies := []float64{}
	for _, row := range blocks[0].Rows {
		energies = append(energies, row.Energy)
	}
	assert.Equal(t, []float64{100, 200, 12398.4197386209}, energies)

	// 默认计算器覆盖全部元素
	recorder, resp = doGet(t, "/apis/scattering-factors?element=Au&element=Og&energy=8000")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &blocks))
	require.Len(t, blocks, 2)
	assert.Equal(t, 79, blocks[0].Element.AtomicNumber)
	assert.Equal(t, 118, blocks[1].Element.AtomicNumber)
}

func TestComputeScatteringFactorsErrors(t *testing.T) {
	cases := []struct {
		target string
		status int
		code   int
	}{
		{"/apis/scattering-factors?element=Fe", http.StatusBadRequest, errcode.InvalidArgument},
		{"/apis/scattering-factors?energy=8000", http.StatusBadRequest, errcode.InvalidArgument},
		{"/apis/scattering-factors?element=Fe&energy=abc", http.StatusBadRequest, errcode.InvalidArgument},
		{"/apis/scattering-factors?element=Fe&wavelength=-1", http.StatusBadRequest, errcode.InvalidArgument},
		{"/apis/scattering-factors?element=Xx&element=Fe&energy=8000", http.StatusNotFound, errcode.ElementNotFound},
	}
	for _, c := range cases {
		recorder, resp := doGet(t, c.target)
		assert.Equal(t, c.status, recorder.Code, c.target)
		assert.Equal(t, c.code, resp.Code, c.target)
		assert.NotEmpty(t, resp.Message, c.target)
	}
}
