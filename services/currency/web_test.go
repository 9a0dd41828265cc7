package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyService(t *testing.T) {

	t.Run("Get rate", func(t *testing.T) {
		// setup
		router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/rate/usd/eur", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"Target": "EUR"`)
		assert.Contains(t, response.Body.String(), `"Rate": "0.92"`)
	})

	t.Run("Unknown target", func(t *testing.T) {
		// setup
		router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/rate/USD/XYZ", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})
}

func setup(t *testing.T) *mux.Router {
	sut := NewService("USD", NewFixedRates(DefaultRates()))
	router := mux.NewRouter()

	err := sut.RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)

	return router
}
