package myhttpclient

import (
	"context"
	"time"
)

const (
	defaultTimeout = 5 * time.Second
)

type HTTPSender interface {
	Send(c context.Context, method string, url string, body []byte) (int, []byte, error)
}

func New() HTTPSender {
	return newJSONHTTPClient(defaultTimeout)
}
