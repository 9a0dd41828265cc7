package myhttpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/salessimulator/lib/myerrors"
)

type echo struct {
	Name string
}

func TestSendJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			body, _ := io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
			w.Write(body)
		case "/rejected":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ErrorCode":2,"Message":"Account is blocked"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`oops`))
		}
	}))
	defer server.Close()

	c := context.TODO()
	sut := New()

	t.Run("Success", func(t *testing.T) {
		resp := echo{}
		err := SendJSON(c, sut, http.MethodPost, server.URL+"/ok", echo{Name: "Marc"}, &resp)
		require.NoError(t, err)
		assert.Equal(t, "Marc", resp.Name)
	})

	t.Run("Structured failure", func(t *testing.T) {
		err := SendJSON(c, sut, http.MethodPost, server.URL+"/rejected", echo{Name: "Marc"}, nil)

		var remoteErr *myerrors.RemoteError
		require.True(t, errors.As(err, &remoteErr))
		assert.Equal(t, 400, remoteErr.HTTPStatus)
		assert.Equal(t, "Account is blocked", myerrors.UserMessage(err))
	})

	t.Run("Unstructured failure", func(t *testing.T) {
		err := SendJSON(c, sut, http.MethodGet, server.URL+"/broken", nil, nil)

		var remoteErr *myerrors.RemoteError
		require.True(t, errors.As(err, &remoteErr))
		assert.Nil(t, remoteErr.Body)
		assert.Equal(t, 502, myerrors.GetHTTPStatus(err))
	})

	t.Run("Unreachable", func(t *testing.T) {
		err := SendJSON(c, sut, http.MethodGet, "http://127.0.0.1:1/nothing", nil, nil)
		assert.Equal(t, 503, myerrors.GetHTTPStatus(err))
	})
}
