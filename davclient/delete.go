package davclient

import (
	"context"
	"net/http"

	"github.com/cyp0633/libwebdav/dav"
)

// Delete removes target, recursively for collections.
func (c *Client) Delete(ctx context.Context, target string, params DeleteParams) (dav.Response, error) {
	c.logger.Debug("starting DELETE request", "url", target)
	return c.sendSimple(ctx, request{
		method: http.MethodDelete,
		target: target,
		header: newHeaderBuilder().ifLockToken(params.LockToken).build(params.Headers),
	})
}
