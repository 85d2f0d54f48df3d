package dav

import "io"

// Response carries the HTTP outcome of any WebDAV call.
type Response struct {
	StatusCode  int
	Description string
}

// NewResponse returns a response with the given status and description.
func NewResponse(statusCode int, description string) Response {
	return Response{StatusCode: statusCode, Description: description}
}

// IsSuccessful reports whether the status code is 2xx.
func (r Response) IsSuccessful() bool {
	return isSuccessStatus(r.StatusCode)
}

// PropfindResponse is returned by PROPFIND and SEARCH.
type PropfindResponse struct {
	Response
	Resources []Resource
}

// ProppatchResponse lists the per-property outcome of a PROPPATCH.
type ProppatchResponse struct {
	Response
	PropertyStatuses []PropertyStatus
}

// LockResponse lists the locks reported after a LOCK request.
type LockResponse struct {
	Response
	ActiveLocks []ActiveLock
}

// GetResponse streams a resource body. The caller must close Body.
type GetResponse struct {
	Response
	Body io.ReadCloser
}

// Close releases the body, if any.
func (r *GetResponse) Close() error {
	if r == nil || r.Body == nil {
		return nil
	}
	return r.Body.Close()
}
