package davclient

import (
	"net/http"
	"time"

	"github.com/cyp0633/libwebdav/dav"
	"github.com/samber/mo"
)

// Every parameter struct carries Headers: any key set there replaces the
// value the client would have sent for that key. XML-bodied verbs also take
// ContentType, which defaults to text/xml; charset=utf-8.

type PropfindParams struct {
	RequestType dav.PropfindRequestType
	// CustomProperties are requested by name, or listed in <include> when
	// RequestType is PropfindAllProperties.
	CustomProperties []dav.PropertyName
	Namespaces       []dav.NamespaceAttr
	// ApplyTo sets Depth; the default is ResourceAndChildren.
	ApplyTo     mo.Option[dav.ApplyTo]
	ContentType string
	Headers     http.Header
}

type ProppatchParams struct {
	PropertiesToSet    []dav.Property
	PropertiesToRemove []dav.PropertyName
	Namespaces         []dav.NamespaceAttr
	LockToken          string
	ContentType        string
	Headers            http.Header
}

type MkcolParams struct {
	LockToken string
	Headers   http.Header
}

type GetParams struct {
	// Translate sends "Translate: t" or "f"; None omits the header.
	Translate mo.Option[bool]
	Headers   http.Header
}

type PutParams struct {
	// ContentType of the uploaded body; empty sends none.
	ContentType string
	LockToken   string
	Headers     http.Header
}

type DeleteParams struct {
	LockToken string
	Headers   http.Header
}

type CopyParams struct {
	// ApplyTo is ResourceOnly or ResourceAndAncestors (the default).
	ApplyTo mo.Option[dav.ApplyTo]
	// Overwrite defaults to true.
	Overwrite     mo.Option[bool]
	DestLockToken string
	Headers       http.Header
}

type MoveParams struct {
	// Overwrite defaults to true.
	Overwrite       mo.Option[bool]
	SourceLockToken string
	DestLockToken   string
	Headers         http.Header
}

type LockParams struct {
	// ApplyTo is ResourceOnly or ResourceAndAncestors; None omits Depth.
	ApplyTo   mo.Option[dav.ApplyTo]
	LockScope dav.LockScope
	Owner     mo.Option[dav.LockOwner]
	Timeout   mo.Option[time.Duration]
	// ContentType of the lockinfo body.
	ContentType string
	Headers     http.Header
}

type UnlockParams struct {
	LockToken string
	Headers   http.Header
}

type SearchParams struct {
	// Scope is the href searched, with infinite depth.
	Scope            string
	SelectProperties []dav.PropertyName
	SearchProperty   dav.PropertyName
	SearchKeyword    string
	Namespaces       []dav.NamespaceAttr
	ContentType      string
	Headers          http.Header
}
