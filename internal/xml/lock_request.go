package xml

import (
	"fmt"

	"github.com/cyp0633/libwebdav/dav"
	"github.com/samber/mo"
)

// BuildLockRequest renders a LOCK body for a write lock.
func BuildLockRequest(scope dav.LockScope, owner mo.Option[dav.LockOwner]) (string, error) {
	doc, root := newRequestDocument(TagLockinfo)

	lockscope := createDAVElement(root, TagLockscope)
	switch scope {
	case dav.LockScopeShared:
		createDAVElement(lockscope, TagShared)
	case dav.LockScopeExclusive:
		createDAVElement(lockscope, TagExclusive)
	default:
		return "", fmt.Errorf("%w: lock scope %s", dav.ErrOutOfRange, scope)
	}

	createDAVElement(createDAVElement(root, TagLocktype), TagWrite)

	if o, ok := owner.Get(); ok {
		ownerEl := createDAVElement(root, TagOwner)
		switch o.Kind {
		case dav.LockOwnerPrincipal:
			ownerEl.SetText(o.Value)
		case dav.LockOwnerURI:
			createDAVElement(ownerEl, TagHref).SetText(o.Value)
		default:
			return "", fmt.Errorf("%w: unknown lock owner kind %d", dav.ErrInvalidArgument, o.Kind)
		}
	}

	return doc.WriteToString()
}
