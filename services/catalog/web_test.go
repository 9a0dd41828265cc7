package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/myhttpclient"
)

func TestCatalogService(t *testing.T) {

	t.Run("Search products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, searcher := setup(t, ctrl)

		// given
		searcher.EXPECT().Search(gomock.Any(), "ball").Return([]Product{
			{ID: "product_tennis_balls", Name: "Tennis balls", Price: decimal.RequireFromString("10.00")},
		}, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/product?term=ball", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		resp := SearchResponse{}
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &resp))
		assert.Equal(t, "ball", resp.Term)
		require.Len(t, resp.Products, 1)
		assert.True(t, decimal.RequireFromString("10").Equal(resp.Products[0].Price))
	})

	t.Run("Search fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, searcher := setup(t, ctrl)

		// given
		searcher.EXPECT().Search(gomock.Any(), "").Return(nil, fmt.Errorf("index down"))

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/product", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 500, response.Code)
	})
}

func TestRemoteSearcher(t *testing.T) {
	c := context.TODO()

	t.Run("Search via remote catalog", func(t *testing.T) {
		router := mux.NewRouter()
		require.NoError(t, NewService(NewInMemoryCatalog()).RegisterEndpoints(c, router))
		server := httptest.NewServer(router)
		defer server.Close()

		sut := NewRemoteSearcher(server.URL+"/", myhttpclient.New())

		got, err := sut.Search(c, "running s")
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "product_running_shoes", got[0].ID)
		assert.True(t, decimal.RequireFromString("9.99").Equal(got[3].Price))
	})

	t.Run("Remote catalog fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"ErrorCode":1,"Message":"index down"}`))
		}))
		defer server.Close()

		sut := NewRemoteSearcher(server.URL, myhttpclient.New())

		_, err := sut.Search(c, "")
		require.Error(t, err)
		assert.Equal(t, "index down", myerrors.UserMessage(err))
		assert.Equal(t, 502, myerrors.GetHTTPStatus(err))
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (*mux.Router, *MockSearcher) {
	searcher := NewMockSearcher(ctrl)

	sut := NewService(searcher)
	router := mux.NewRouter()

	err := sut.RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)

	return router, searcher
}
