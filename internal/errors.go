package internal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingParameter = errors.New("intl: missing parameter")
	ErrInvalidValue     = errors.New("intl: invalid value")
	ErrUnknownMessage   = errors.New("intl: unknown message key")
)

// MissingParameterError reports a helper called without a required parameter.
// When several parameters are listed, any one of them would do.
type MissingParameterError struct {
	Op     string
	Params []string
}

func (e *MissingParameterError) Error() string {
	switch len(e.Params) {
	case 0:
		return fmt.Sprintf("@%s is missing a parameter", e.Op)
	case 1:
		return fmt.Sprintf("@%s needs a `%s` parameter", e.Op, e.Params[0])
	default:
		quoted := make([]string, len(e.Params))
		for i, p := range e.Params {
			quoted[i] = "`" + p + "`"
		}
		return fmt.Sprintf("@%s needs either a %s parameter", e.Op, strings.Join(quoted, " or "))
	}
}

func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// InvalidValueError reports a parameter whose value cannot be used.
type InvalidValueError struct {
	Err   error
	Value any
	Op    string
	Param string
}

func (e *InvalidValueError) Error() string {
	var msg string
	switch e.Param {
	case "val":
		if e.Op == "formatNumber" {
			msg = fmt.Sprintf("@%s requires a valid number `val`", e.Op)
		} else {
			msg = fmt.Sprintf("@%s requires a valid date or timestamp `val`", e.Op)
		}
	default:
		msg = fmt.Sprintf("@%s got an invalid `%s` value %v", e.Op, e.Param, e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
