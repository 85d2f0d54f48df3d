package davclient

import (
	"context"

	"github.com/cyp0633/libwebdav/dav"
)

// Move relocates source to destination. Source and destination lock tokens
// are sent as two separate If headers.
func (c *Client) Move(ctx context.Context, source, destination string, params MoveParams) (dav.Response, error) {
	c.logger.Debug("starting MOVE request",
		"url", source,
		"destination", destination)

	dest, err := c.resolve(destination)
	if err != nil {
		return dav.Response{}, err
	}

	header := newHeaderBuilder().
		set("Destination", dest.String()).
		set("Overwrite", overwriteValue(params.Overwrite)).
		ifLockToken(params.SourceLockToken).
		ifLockToken(params.DestLockToken).
		build(params.Headers)

	return c.sendSimple(ctx, request{method: "MOVE", target: source, header: header})
}
