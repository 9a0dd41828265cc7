package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type httpError struct {
	httpCode int
	err      error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) Unwrap() error {
	return e.err
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...interface{}) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewUnsupportedMediaTypeError(err error) *httpError {
	return newError(http.StatusUnsupportedMediaType, err)
}

func NewNotFoundError(err error) *httpError {
	return newError(http.StatusNotFound, err)
}

func NewAuthenticationError(err error) *httpError {
	return newError(http.StatusForbidden, err)
}

// NewConflictError signals that the resource is busy with an operation that is still in flight.
func NewConflictError(err error) *httpError {
	return newError(http.StatusConflict, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func NewNotImplementedError(err error) *httpError {
	return newError(http.StatusNotImplemented, err)
}

func NewUnavailableError(err error) *httpError {
	return newError(http.StatusServiceUnavailable, err)
}

func GetHTTPStatus(err error) int {
	if err != nil {
		var coder httpErrorCoder
		if errors.As(err, &coder) {
			return coder.GetHTTPErrorCode()
		}
	}
	return http.StatusInternalServerError
}

// ErrorBody is the structured payload a remote service returns next to a failure status.
type ErrorBody struct {
	ErrorCode int
	Message   string
}

// RemoteError is returned by adapters of remote services that answered with a non-success status.
type RemoteError struct {
	HTTPStatus int
	Body       *ErrorBody
	Err        error
}

func NewRemoteError(httpStatus int, body *ErrorBody, err error) *RemoteError {
	return &RemoteError{
		HTTPStatus: httpStatus,
		Body:       body,
		Err:        err,
	}
}

func (e RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote status: %d, err: %s", e.HTTPStatus, e.Err.Error())
	}
	return fmt.Sprintf("remote status: %d", e.HTTPStatus)
}

func (e RemoteError) Unwrap() error {
	return e.Err
}

func (e RemoteError) GetHTTPErrorCode() int {
	if e.HTTPStatus >= http.StatusInternalServerError || e.HTTPStatus == 0 {
		return http.StatusBadGateway
	}
	return e.HTTPStatus
}

// UserMessage extracts the text to show to a user: the structured body message of a
// remote error when present, the cause of a status carrying error next, the plain error text otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) && remoteErr.Body != nil && remoteErr.Body.Message != "" {
		return remoteErr.Body.Message
	}

	var statusErr *httpError
	if errors.As(err, &statusErr) && statusErr.err != nil {
		return statusErr.err.Error()
	}

	return err.Error()
}
