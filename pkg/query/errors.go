package query

import (
	"fmt"

	"github.com/pkg/errors"
)

// UsageError 命令行参数错误，出现时不会进行任何计算
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

// ErrNoEnergy 既没有指定能量也没有指定波长
var ErrNoEnergy = &UsageError{Reason: "neither energy nor wavelength was specified"}

// NewInvalidValueError 能量或波长不是有限正数
func NewInvalidValueError(kind string, value float64) *UsageError {
	return &UsageError{Reason: fmt.Sprintf("invalid %s %g: must be a positive finite number", kind, value)}
}

// IsUsageError ...
func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}
