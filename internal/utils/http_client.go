package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the client generated ID of an outbound request.
const RequestIDHeader = "X-Request-ID"

// IDGenerator produces unique request identifiers.
type IDGenerator interface {
	Generate() string
}

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly and stamps
// every request that has no [RequestIDHeader] with the ID found in the
// request context, or a fresh one.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.NewUUIDGenerator())
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
	ids IDGenerator
}

// NewHTTPClient creates an HTTPClient backed by a new resty.Client. Each call
// returns an independent client with its own connection pool. ids may be nil,
// in which case requests are sent without a generated ID.
func NewHTTPClient(ids IDGenerator) *HTTPClient {
	c := &HTTPClient{Client: resty.New(), ids: ids}
	c.OnBeforeRequest(c.stampRequestID)
	return c
}

func (c *HTTPClient) stampRequestID(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(RequestIDHeader) != "" {
		return nil
	}
	if id, ok := GetRequestIDFromContext(req.Context()); ok {
		req.SetHeader(RequestIDHeader, id)
		return nil
	}
	if c.ids != nil {
		req.SetHeader(RequestIDHeader, c.ids.Generate())
	}
	return nil
}
