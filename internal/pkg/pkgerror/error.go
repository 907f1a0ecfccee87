// Package pkgerror carries business-level errors from the inner layers
// to the HTTP boundary, where the code decides the response status.
package pkgerror

import (
	"errors"
	"net/http"
)

type Code int

const (
	CodeUnknown Code = iota
	CodeInvalidInput
	CodeNotFound
	CodeUnavailable
)

type Business struct {
	msg  string
	code Code
}

func NewBusiness(msg string, code Code) *Business {
	return &Business{msg: msg, code: code}
}

func (b *Business) Error() string {
	return b.msg
}

func (b *Business) Code() Code {
	return b.code
}

// HTTPStatus maps an error to a response status. Non-business errors
// map to 500; their details stay in the logs, not the response.
func HTTPStatus(err error) int {
	var business *Business
	if !errors.As(err, &business) {
		return http.StatusInternalServerError
	}

	switch business.Code() {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
