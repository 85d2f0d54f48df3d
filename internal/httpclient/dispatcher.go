package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// Dispatcher sends one HTTP request and returns the raw response.
// Implementations must be safe for concurrent use.
type Dispatcher interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Request is a single outgoing WebDAV request.
type Request struct {
	URL    *url.URL
	Method string
	Header http.Header
	Body   io.Reader
	// ContentType is applied to the request body unless Header already carries
	// a Content-Type.
	ContentType string
	// Stream leaves the response body open for the caller to read and close.
	// Otherwise the body is read fully before Send returns.
	Stream bool
}

type Response struct {
	StatusCode int
	// Reason is the reason phrase of the status line, e.g. "Multi-Status".
	Reason string
	Header http.Header
	Body   io.ReadCloser
}

// Close releases the response body.
func (r *Response) Close() error {
	if r == nil || r.Body == nil {
		return nil
	}
	return r.Body.Close()
}
