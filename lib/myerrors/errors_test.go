package myerrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	myErr := fmt.Errorf("my error")

	testCases := []struct {
		name       string
		in         error
		httpStatus int
		errorText  string
	}{
		{
			name:       "No http error",
			in:         myErr,
			httpStatus: 500,
			errorText:  "my error",
		},
		{
			name:       "Invalid input error",
			in:         NewInvalidInputError(myErr),
			httpStatus: 400,
			errorText:  "status: 400, err: my error",
		},
		{
			name:       "Invalid input errorf",
			in:         NewInvalidInputErrorf("%s: %d", myErr.Error(), 123),
			httpStatus: 400,
			errorText:  "status: 400, err: my error: 123",
		},
		{
			name:       "Authentication error",
			in:         NewAuthenticationError(myErr),
			httpStatus: 403,
			errorText:  "status: 403, err: my error",
		},
		{
			name:       "Not found error",
			in:         NewNotFoundError(myErr),
			httpStatus: 404,
			errorText:  "status: 404, err: my error",
		},
		{
			name:       "Conflict error",
			in:         NewConflictError(myErr),
			httpStatus: 409,
			errorText:  "status: 409, err: my error",
		},
		{
			name:       "UnsupportedMedia error",
			in:         NewUnsupportedMediaTypeError(myErr),
			httpStatus: 415,
			errorText:  "status: 415, err: my error",
		},
		{
			name:       "Internal error",
			in:         NewInternalError(myErr),
			httpStatus: 500,
			errorText:  "status: 500, err: my error",
		},
		{
			name:       "Not implemented error",
			in:         NewNotImplementedError(myErr),
			httpStatus: 501,
			errorText:  "status: 501, err: my error",
		},
		{
			name:       "Not available error",
			in:         NewUnavailableError(myErr),
			httpStatus: 503,
			errorText:  "status: 503, err: my error",
		},
		{
			name:       "Wrapped error",
			in:         fmt.Errorf("while doing x: %w", NewNotFoundError(myErr)),
			httpStatus: 404,
			errorText:  "while doing x: status: 404, err: my error",
		},
		{
			name:       "Remote client error",
			in:         NewRemoteError(422, &ErrorBody{Message: "bad items"}, myErr),
			httpStatus: 422,
			errorText:  "remote status: 422, err: my error",
		},
		{
			name:       "Remote server error",
			in:         NewRemoteError(500, nil, nil),
			httpStatus: 502,
			errorText:  "remote status: 500",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpStatus := GetHTTPStatus(tc.in)
			if httpStatus != tc.httpStatus {
				t.Errorf("HttpStatus: got %v, want %v", httpStatus, tc.httpStatus)
			}
			if tc.errorText != tc.in.Error() {
				t.Errorf("%s: ErrorText: got %v, want %v", tc.name, tc.in.Error(), tc.errorText)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	t.Run("Prefer structured body", func(t *testing.T) {
		err := fmt.Errorf("error creating order: %w", NewRemoteError(400, &ErrorBody{ErrorCode: 2, Message: "Account is blocked"}, fmt.Errorf("boom")))
		assert.Equal(t, "Account is blocked", UserMessage(err))
	})

	t.Run("Fallback on error text", func(t *testing.T) {
		err := NewRemoteError(400, &ErrorBody{}, fmt.Errorf("boom"))
		assert.Equal(t, "remote status: 400, err: boom", UserMessage(err))
	})

	t.Run("Cause of status error", func(t *testing.T) {
		err := fmt.Errorf("error submitting: %w", NewInvalidInputErrorf("account is required"))
		assert.Equal(t, "account is required", UserMessage(err))
	})

	t.Run("Plain error", func(t *testing.T) {
		assert.Equal(t, "boom", UserMessage(fmt.Errorf("boom")))
	})

	t.Run("No error", func(t *testing.T) {
		assert.Equal(t, "", UserMessage(nil))
	})
}
