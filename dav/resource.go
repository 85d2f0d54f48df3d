package dav

import (
	"slices"
	"time"

	"github.com/samber/mo"
)

// Resource is a single resource returned by PROPFIND or SEARCH.
type Resource struct {
	URI              string
	IsCollection     bool
	IsHidden         bool
	ContentType      mo.Option[string]
	ContentLength    mo.Option[int64]
	ContentLanguage  mo.Option[string]
	ETag             mo.Option[string]
	CreationDate     mo.Option[time.Time]
	LastModifiedDate mo.Option[time.Time]
	DisplayName      mo.Option[string]
	ActiveLocks      []ActiveLock
	// Properties holds every successfully returned property, first occurrence
	// of each name only, in document order.
	Properties []Property
	// PropertyStatuses holds the status of every property, successful or not.
	PropertyStatuses []PropertyStatus
}

// Property returns the property with the given name.
func (r Resource) Property(name PropertyName) mo.Option[Property] {
	for _, p := range r.Properties {
		if p.Name == name {
			return mo.Some(p)
		}
	}
	return mo.None[Property]()
}

// ResourceBuilder assembles a Resource.
type ResourceBuilder struct {
	res Resource
}

// NewResourceBuilder returns a builder for an empty Resource.
func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{}
}

// WithURI sets the resource href.
func (b *ResourceBuilder) WithURI(uri string) *ResourceBuilder {
	b.res.URI = uri
	return b
}

// IsCollection marks the resource as a collection.
func (b *ResourceBuilder) IsCollection() *ResourceBuilder {
	b.res.IsCollection = true
	return b
}

// IsHidden marks the resource as hidden.
func (b *ResourceBuilder) IsHidden() *ResourceBuilder {
	b.res.IsHidden = true
	return b
}

// WithContentType sets getcontenttype.
func (b *ResourceBuilder) WithContentType(v mo.Option[string]) *ResourceBuilder {
	b.res.ContentType = v
	return b
}

// WithContentLength sets getcontentlength.
func (b *ResourceBuilder) WithContentLength(v mo.Option[int64]) *ResourceBuilder {
	b.res.ContentLength = v
	return b
}

// WithContentLanguage sets getcontentlanguage.
func (b *ResourceBuilder) WithContentLanguage(v mo.Option[string]) *ResourceBuilder {
	b.res.ContentLanguage = v
	return b
}

// WithETag sets getetag.
func (b *ResourceBuilder) WithETag(v mo.Option[string]) *ResourceBuilder {
	b.res.ETag = v
	return b
}

// WithCreationDate sets creationdate.
func (b *ResourceBuilder) WithCreationDate(v mo.Option[time.Time]) *ResourceBuilder {
	b.res.CreationDate = v
	return b
}

// WithLastModifiedDate sets getlastmodified.
func (b *ResourceBuilder) WithLastModifiedDate(v mo.Option[time.Time]) *ResourceBuilder {
	b.res.LastModifiedDate = v
	return b
}

// WithDisplayName sets displayname.
func (b *ResourceBuilder) WithDisplayName(v mo.Option[string]) *ResourceBuilder {
	b.res.DisplayName = v
	return b
}

// WithActiveLocks sets the locks from lockdiscovery.
func (b *ResourceBuilder) WithActiveLocks(locks []ActiveLock) *ResourceBuilder {
	b.res.ActiveLocks = locks
	return b
}

// WithProperties sets the successfully returned properties.
func (b *ResourceBuilder) WithProperties(props []Property) *ResourceBuilder {
	b.res.Properties = props
	return b
}

// WithPropertyStatuses sets the per-property statuses.
func (b *ResourceBuilder) WithPropertyStatuses(statuses []PropertyStatus) *ResourceBuilder {
	b.res.PropertyStatuses = statuses
	return b
}

// Build returns the resource. Slices are copied so later builder calls do not
// leak into the returned value.
func (b *ResourceBuilder) Build() Resource {
	res := b.res
	res.ActiveLocks = slices.Clone(b.res.ActiveLocks)
	res.Properties = slices.Clone(b.res.Properties)
	res.PropertyStatuses = slices.Clone(b.res.PropertyStatuses)
	return res
}
