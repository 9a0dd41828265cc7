package myhttpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/mylog"
)

type jsonHTTPClient struct {
	client *http.Client
	logger mylog.Logger
}

func newJSONHTTPClient(timeout time.Duration) HTTPSender {
	return &jsonHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		logger: mylog.New("httpclient"),
	}
}

func (c jsonHTTPClient) Send(ctx context.Context, method string, url string, body []byte) (int, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error creating http request for %s %s: %w", method, url, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Log(ctx, "", mylog.SeverityDebug, "HTTP request: %s %s", method, url)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error sending %s %s: %w", method, url, err)
	}
	defer httpResp.Body.Close()

	respPayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error reading response %s %s: %w", method, url, err)
	}

	c.logger.Log(ctx, "", mylog.SeverityDebug, "HTTP response: %s %s -> %d", method, url, httpResp.StatusCode)

	return httpResp.StatusCode, respPayload, nil
}

// SendJSON marshals req, sends it and unmarshals a successful response into resp.
// A non-2xx answer becomes a *myerrors.RemoteError carrying the parsed error body, if any.
func SendJSON(c context.Context, sender HTTPSender, method string, url string, req any, resp any) error {
	var body []byte
	if req != nil {
		var err error
		body, err = json.Marshal(req)
		if err != nil {
			return fmt.Errorf("error marshalling request for %s %s: %w", method, url, err)
		}
	}

	status, respBody, err := sender.Send(c, method, url, body)
	if err != nil {
		return myerrors.NewUnavailableError(err)
	}

	if status < 200 || status >= 300 {
		errorBody := &myerrors.ErrorBody{}
		if json.Unmarshal(respBody, errorBody) != nil || errorBody.Message == "" {
			errorBody = nil
		}
		return myerrors.NewRemoteError(status, errorBody, fmt.Errorf("%s %s failed", method, url))
	}

	if resp == nil {
		return nil
	}

	err = json.Unmarshal(respBody, resp)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error parsing response of %s %s: %w", method, url, err))
	}

	return nil
}
