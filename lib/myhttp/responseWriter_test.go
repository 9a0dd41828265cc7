package myhttp

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/mylog"
)

func TestResponseWriter(t *testing.T) {
	c := context.TODO()
	sut := NewWriter(mylog.New("myhttp"))

	t.Run("Write success", func(t *testing.T) {
		response := httptest.NewRecorder()

		sut.Write(c, response, 201, SuccessResponse{Message: "created"})

		assert.Equal(t, 201, response.Code)
		assert.Equal(t, "application/json", response.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"Message":"created"}`, response.Body.String())
	})

	t.Run("Write error", func(t *testing.T) {
		response := httptest.NewRecorder()

		sut.WriteError(c, response, 3, myerrors.NewNotFoundError(fmt.Errorf("session 123 not found")))

		assert.Equal(t, 404, response.Code)
		assert.JSONEq(t, `{"ErrorCode":3,"Message":"session 123 not found"}`, response.Body.String())
	})

	t.Run("Write remote error with body", func(t *testing.T) {
		response := httptest.NewRecorder()

		sut.WriteError(c, response, 4, myerrors.NewRemoteError(400, &myerrors.ErrorBody{Message: "Account is blocked"}, fmt.Errorf("boom")))

		assert.Equal(t, 400, response.Code)
		assert.JSONEq(t, `{"ErrorCode":4,"Message":"Account is blocked"}`, response.Body.String())
	})
}
