package davclient

import (
	"context"
	"io"
	"net/http"

	"github.com/cyp0633/libwebdav/dav"
)

// Put uploads body to target.
func (c *Client) Put(ctx context.Context, target string, body io.Reader, params PutParams) (dav.Response, error) {
	c.logger.Debug("starting PUT request",
		"url", target,
		"content_type", params.ContentType)

	if body == nil {
		body = http.NoBody
	}
	return c.sendSimple(ctx, request{
		method:      http.MethodPut,
		target:      target,
		header:      newHeaderBuilder().ifLockToken(params.LockToken).build(params.Headers),
		body:        body,
		contentType: params.ContentType,
	})
}
