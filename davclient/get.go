package davclient

import (
	"context"
	"net/http"

	"github.com/cyp0633/libwebdav/dav"
	"github.com/samber/mo"
)

// GetRaw downloads target without server-side processing (Translate: f). The
// caller must close the returned body.
func (c *Client) GetRaw(ctx context.Context, target string, params GetParams) (dav.GetResponse, error) {
	params.Translate = mo.Some(false)
	return c.Get(ctx, target, params)
}

// GetProcessed downloads target as rendered by the server (Translate: t).
// The caller must close the returned body.
func (c *Client) GetProcessed(ctx context.Context, target string, params GetParams) (dav.GetResponse, error) {
	params.Translate = mo.Some(true)
	return c.Get(ctx, target, params)
}

// Get downloads target. The body is streamed and must be closed by the caller.
func (c *Client) Get(ctx context.Context, target string, params GetParams) (dav.GetResponse, error) {
	c.logger.Debug("starting GET request", "url", target)

	hb := newHeaderBuilder()
	if translate, ok := params.Translate.Get(); ok {
		hb.set("Translate", translateValue(translate))
	}

	resp, err := c.send(ctx, request{
		method: http.MethodGet,
		target: target,
		header: hb.build(params.Headers),
		stream: true,
	})
	if err != nil {
		return dav.GetResponse{}, err
	}

	c.logger.Debug("GET request complete",
		"status", resp.StatusCode,
		"content_type", resp.Header.Get("Content-Type"))
	return dav.GetResponse{
		Response: dav.NewResponse(resp.StatusCode, resp.Reason),
		Body:     resp.Body,
	}, nil
}
