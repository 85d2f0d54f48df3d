package davclient

import (
	"context"

	"github.com/cyp0633/libwebdav/dav"
)

// Mkcol creates a collection at target.
func (c *Client) Mkcol(ctx context.Context, target string, params MkcolParams) (dav.Response, error) {
	c.logger.Debug("starting MKCOL request", "url", target)
	return c.sendSimple(ctx, request{
		method: "MKCOL",
		target: target,
		header: newHeaderBuilder().ifLockToken(params.LockToken).build(params.Headers),
	})
}
