package ginx

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// RequestIDHeaderKey ...
const RequestIDHeaderKey = "X-Request-ID"

// ErrNilRequestBody ...
var ErrNilRequestBody = errors.New("request Body is nil")

// ReadRequestBody will return the body in []byte, without change the origin body
func ReadRequestBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, ErrNilRequestBody
	}

	body, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, err
}

// GetFloatsFromQuery 解析可重复的浮点数查询参数，保持出现顺序
func GetFloatsFromQuery(c *gin.Context, key string) ([]float64, error) {
	values := c.QueryArray(key)
	floats := make([]float64, 0, len(values))
	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Errorf("invalid %s: %q", key, v)
		}
		floats = append(floats, f)
	}
	return floats, nil
}
