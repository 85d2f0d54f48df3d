package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cyp0633/libwebdav/dav"
)

type httpDispatcher struct {
	client *http.Client
	logger *slog.Logger
}

// NewDispatcher returns a Dispatcher backed by client.
func NewDispatcher(client *http.Client, logger *slog.Logger) (Dispatcher, error) {
	if client == nil {
		return nil, errors.New("http client is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &httpDispatcher{client: client, logger: logger}, nil
}

// Send performs the request. Unless r.Stream is set the body is read fully
// and the network connection released before returning.
func (d *httpDispatcher) Send(ctx context.Context, r *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.URL == nil {
		return nil, fmt.Errorf("%s request without URL: %w", r.Method, dav.ErrInvalidArgument)
	}

	d.logger.Debug("sending request",
		"method", r.Method,
		"url", r.URL.String(),
		"stream", r.Stream)

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL.String(), r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", r.Method, err)
	}
	for key, values := range r.Header {
		req.Header[key] = append([]string(nil), values...)
	}
	if r.ContentType != "" && r.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", r.ContentType)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Debug("request failed", "method", r.Method, "url", r.URL.String(), "error", err)
		return nil, err
	}

	d.logger.Debug("received response",
		"method", r.Method,
		"status", resp.Status,
		"content_type", resp.Header.Get("Content-Type"))

	out := &Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Header:     resp.Header,
		Body:       resp.Body,
	}
	if r.Stream {
		return out, nil
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response body: %w", r.Method, err)
	}
	out.Body = io.NopCloser(bytes.NewReader(data))
	return out, nil
}

// reasonPhrase strips the numeric code from resp.Status, falling back to the
// canonical text when the server sent none.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		return http.StatusText(resp.StatusCode)
	}
	return reason
}

// ResolveURL resolves target against base. An absolute target is returned as
// is; a relative one needs a base.
func ResolveURL(base *url.URL, target string) (*url.URL, error) {
	ref, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL %q: %w", target, err)
	}
	if ref.IsAbs() {
		return ref, nil
	}
	if base == nil {
		return nil, fmt.Errorf("cannot resolve %q: %w", target, dav.ErrNoBaseAddress)
	}
	return base.ResolveReference(ref), nil
}
