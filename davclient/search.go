package davclient

import (
	"context"
	"strings"

	"github.com/cyp0633/libwebdav/dav"
	"github.com/cyp0633/libwebdav/internal/xml"
)

// Search runs a basic search under params.Scope, matching SearchKeyword
// against SearchProperty with a LIKE comparison. Missing scope, property or
// keyword fail before anything is sent.
func (c *Client) Search(ctx context.Context, target string, params SearchParams) (dav.PropfindResponse, error) {
	c.logger.Debug("starting SEARCH request",
		"url", target,
		"scope", params.Scope,
		"property", params.SearchProperty.String())

	body, err := xml.BuildSearchRequest(xml.SearchRequest{
		Scope:            params.Scope,
		SelectProperties: params.SelectProperties,
		SearchProperty:   params.SearchProperty,
		SearchKeyword:    params.SearchKeyword,
		Namespaces:       params.Namespaces,
	})
	if err != nil {
		return dav.PropfindResponse{}, err
	}

	resp, err := c.send(ctx, request{
		method:      "SEARCH",
		target:      target,
		header:      newHeaderBuilder().build(params.Headers),
		body:        strings.NewReader(body),
		contentType: contentTypeOr(params.ContentType),
	})
	if err != nil {
		return dav.PropfindResponse{}, err
	}

	result := xml.ParsePropfindResponse(c.readBody(resp), resp.StatusCode, resp.Reason)
	c.logger.Debug("SEARCH request complete",
		"status", resp.StatusCode,
		"resources", len(result.Resources))
	return result, nil
}
