package xml

import "github.com/cyp0633/libwebdav/dav"

// ParseProppatchResponse flattens the property statuses of every <response>
// into one list.
func ParseProppatchResponse(body string, statusCode int, description string) dav.ProppatchResponse {
	resp := dav.ProppatchResponse{
		Response:         dav.NewResponse(statusCode, description),
		PropertyStatuses: []dav.PropertyStatus{},
	}

	root := parseRoot(body)
	if root == nil {
		return resp
	}

	for _, el := range FindChildren(root, TagResponse) {
		resp.PropertyStatuses = append(resp.PropertyStatuses, PropertyStatuses(ParsePropstats(el))...)
	}
	return resp
}
