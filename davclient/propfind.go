package davclient

import (
	"context"
	"strings"

	"github.com/cyp0633/libwebdav/dav"
	"github.com/cyp0633/libwebdav/internal/xml"
)

// Propfind retrieves properties of target and, depending on depth, its members.
func (c *Client) Propfind(ctx context.Context, target string, params PropfindParams) (dav.PropfindResponse, error) {
	c.logger.Debug("starting PROPFIND request",
		"url", target,
		"request_type", params.RequestType.String(),
		"properties", len(params.CustomProperties))

	depth, err := propfindDepth(params.ApplyTo)
	if err != nil {
		return dav.PropfindResponse{}, err
	}

	r := request{
		method: "PROPFIND",
		target: target,
		header: newHeaderBuilder().set("Depth", depth).build(params.Headers),
	}
	if body, ok := xml.BuildPropfindRequest(params.RequestType, params.CustomProperties, params.Namespaces).Get(); ok {
		r.body = strings.NewReader(body)
		r.contentType = contentTypeOr(params.ContentType)
	}

	resp, err := c.send(ctx, r)
	if err != nil {
		return dav.PropfindResponse{}, err
	}

	result := xml.ParsePropfindResponse(c.readBody(resp), resp.StatusCode, resp.Reason)
	c.logger.Debug("PROPFIND request complete",
		"status", resp.StatusCode,
		"resources", len(result.Resources))
	return result, nil
}
