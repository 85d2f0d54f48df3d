package davclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/cyp0633/libwebdav/dav"
	"github.com/cyp0633/libwebdav/internal/xml"
)

// Proppatch sets and removes properties of target.
func (c *Client) Proppatch(ctx context.Context, target string, params ProppatchParams) (dav.ProppatchResponse, error) {
	c.logger.Debug("starting PROPPATCH request",
		"url", target,
		"set", len(params.PropertiesToSet),
		"remove", len(params.PropertiesToRemove))

	body, err := xml.BuildProppatchRequest(params.PropertiesToSet, params.PropertiesToRemove, params.Namespaces)
	if err != nil {
		return dav.ProppatchResponse{}, fmt.Errorf("failed to build PROPPATCH body: %w", err)
	}
	resp, err := c.send(ctx, request{
		method:      "PROPPATCH",
		target:      target,
		header:      newHeaderBuilder().ifLockToken(params.LockToken).build(params.Headers),
		body:        strings.NewReader(body),
		contentType: contentTypeOr(params.ContentType),
	})
	if err != nil {
		return dav.ProppatchResponse{}, err
	}

	result := xml.ParseProppatchResponse(c.readBody(resp), resp.StatusCode, resp.Reason)
	c.logger.Debug("PROPPATCH request complete",
		"status", resp.StatusCode,
		"property_statuses", len(result.PropertyStatuses))
	return result, nil
}
