package davclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cyp0633/libwebdav/dav"
	"github.com/cyp0633/libwebdav/internal/httpclient"
)

// Dispatcher is the transport a Client sends its requests through.
type (
	Dispatcher       = httpclient.Dispatcher
	DispatchRequest  = httpclient.Request
	DispatchResponse = httpclient.Response
)

// Config holds configuration for NewClient
type Config struct {
	// BaseURL is the absolute URL relative targets are resolved against.
	// Without it every target must be absolute.
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
	// HTTPClient replaces the client built from Timeout and Transport.
	HTTPClient *http.Client
	Transport  http.RoundTripper
	// Dispatcher replaces the HTTP stack entirely.
	Dispatcher Dispatcher
	Logger     *slog.Logger
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}

// Client issues WebDAV requests. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	dispatcher Dispatcher
	logger     *slog.Logger
}

// NewClient creates a WebDAV client from cfg. A nil cfg means DefaultConfig.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var base *url.URL
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, dav.ErrInvalidArgument)
		}
		if !u.IsAbs() || u.Host == "" {
			return nil, fmt.Errorf("base URL %q must be absolute: %w", cfg.BaseURL, dav.ErrInvalidArgument)
		}
		base = u
	}

	dispatcher := cfg.Dispatcher
	if dispatcher == nil {
		client := cfg.HTTPClient
		if client == nil {
			transport := cfg.Transport
			if cfg.Username != "" {
				transport = httpclient.NewBasicAuthTransport(cfg.Username, cfg.Password, transport, logger)
			}
			client = &http.Client{Timeout: cfg.Timeout, Transport: transport}
		}
		d, err := httpclient.NewDispatcher(client, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create dispatcher: %w", err)
		}
		dispatcher = d
	}

	return &Client{baseURL: base, dispatcher: dispatcher, logger: logger}, nil
}

// request is a prepared call: resolved target, headers and optional body.
type request struct {
	method      string
	target      string
	header      http.Header
	body        io.Reader
	contentType string
	stream      bool
}

// send resolves the target and dispatches the request.
func (c *Client) send(ctx context.Context, r request) (*DispatchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u, err := c.resolve(r.target)
	if err != nil {
		c.logger.Debug("failed to resolve URL", "url", r.target, "error", err)
		return nil, err
	}
	c.logger.Debug("resolved URL", "method", r.method, "url", u.String())

	resp, err := c.dispatcher.Send(ctx, &DispatchRequest{
		URL:         u,
		Method:      r.method,
		Header:      r.header,
		Body:        r.body,
		ContentType: r.contentType,
		Stream:      r.stream,
	})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.method, u.String(), err)
	}
	return resp, nil
}

func (c *Client) resolve(target string) (*url.URL, error) {
	return httpclient.ResolveURL(c.baseURL, target)
}

// readBody decodes and closes the body of a non-streamed response.
func (c *Client) readBody(resp *DispatchResponse) string {
	defer resp.Close()
	body, err := httpclient.DecodeBody(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		c.logger.Debug("failed to decode response body", "error", err)
		return ""
	}
	return body
}

// sendSimple performs a request whose response carries only a status.
func (c *Client) sendSimple(ctx context.Context, r request) (dav.Response, error) {
	resp, err := c.send(ctx, r)
	if err != nil {
		return dav.Response{}, err
	}
	resp.Close()
	c.logger.Debug("request complete", "method", r.method, "status", resp.StatusCode)
	return dav.NewResponse(resp.StatusCode, resp.Reason), nil
}
