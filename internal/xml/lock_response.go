package xml

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/cyp0633/libwebdav/dav"
)

// ParseLockResponse reads the <lockdiscovery> of a LOCK response body. A body
// without one yields no locks.
func ParseLockResponse(body string, statusCode int, description string) dav.LockResponse {
	resp := dav.LockResponse{
		Response:    dav.NewResponse(statusCode, description),
		ActiveLocks: []dav.ActiveLock{},
	}

	root := parseRoot(body)
	if root == nil {
		return resp
	}

	discovery := root
	if !strings.EqualFold(root.Tag, TagLockdiscovery) {
		discovery = FindChild(root, TagLockdiscovery)
	}
	if discovery == nil {
		return resp
	}

	resp.ActiveLocks = ParseLockDiscovery(discovery)
	return resp
}

// ParseLockDiscovery converts each <activelock> child into an ActiveLock.
func ParseLockDiscovery(discovery *etree.Element) []dav.ActiveLock {
	locks := []dav.ActiveLock{}
	for _, el := range FindChildren(discovery, TagActivelock) {
		locks = append(locks, parseActiveLock(el))
	}
	return locks
}

func parseActiveLock(el *etree.Element) dav.ActiveLock {
	return dav.NewActiveLockBuilder().
		WithApplyTo(ParseLockDepth(FindChild(el, TagDepth))).
		WithLockRoot(optionalText(FindChild(el, TagLockroot))).
		WithLockScope(ParseLockScope(FindChild(el, TagLockscope))).
		WithLockToken(optionalText(FindChild(el, TagLocktoken))).
		WithOwner(ParseOwner(FindChild(el, TagOwner))).
		WithTimeout(ParseLockTimeout(FindChild(el, TagTimeout))).
		Build()
}
