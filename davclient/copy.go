package davclient

import (
	"context"

	"github.com/cyp0633/libwebdav/dav"
)

// Copy duplicates source at destination. Both may be relative to the base URL;
// the Destination header is always sent absolute.
func (c *Client) Copy(ctx context.Context, source, destination string, params CopyParams) (dav.Response, error) {
	c.logger.Debug("starting COPY request",
		"url", source,
		"destination", destination)

	depth, err := lockDepth(params.ApplyTo.OrElse(dav.ApplyToResourceAndAncestors))
	if err != nil {
		return dav.Response{}, err
	}
	dest, err := c.resolve(destination)
	if err != nil {
		return dav.Response{}, err
	}

	header := newHeaderBuilder().
		set("Destination", dest.String()).
		set("Depth", depth).
		set("Overwrite", overwriteValue(params.Overwrite)).
		ifLockToken(params.DestLockToken).
		build(params.Headers)

	return c.sendSimple(ctx, request{method: "COPY", target: source, header: header})
}
