package dav

import "strconv"

// ApplyTo scopes an operation the way the Depth header does.
type ApplyTo int

const (
	ApplyToResourceOnly         ApplyTo = iota + 1 // Depth: 0
	ApplyToResourceAndChildren                     // Depth: 1
	ApplyToResourceAndAncestors                    // Depth: infinity
)

// String returns the name of the depth.
func (a ApplyTo) String() string {
	switch a {
	case ApplyToResourceOnly:
		return "ResourceOnly"
	case ApplyToResourceAndChildren:
		return "ResourceAndChildren"
	case ApplyToResourceAndAncestors:
		return "ResourceAndAncestors"
	}
	return "ApplyTo(" + strconv.Itoa(int(a)) + ")"
}

// LockScope is the scope of a write lock.
type LockScope int

const (
	LockScopeShared LockScope = iota + 1
	LockScopeExclusive
)

// String returns the name of the scope.
func (s LockScope) String() string {
	switch s {
	case LockScopeShared:
		return "shared"
	case LockScopeExclusive:
		return "exclusive"
	}
	return "LockScope(" + strconv.Itoa(int(s)) + ")"
}

// ResourceType distinguishes collections from every other kind of resource.
type ResourceType int

const (
	ResourceTypeOther ResourceType = iota
	ResourceTypeCollection
)

// String returns the name of the resource type.
func (t ResourceType) String() string {
	if t == ResourceTypeCollection {
		return "collection"
	}
	return "other"
}

// PropfindRequestType selects the body sent with a PROPFIND request.
type PropfindRequestType int

const (
	// PropfindAllProperties sends <allprop/>, plus <include/> when custom
	// properties are given. It is the default.
	PropfindAllProperties PropfindRequestType = iota
	// PropfindNamedProperties sends <prop/> with only the custom properties.
	PropfindNamedProperties
	// PropfindAllPropertiesImplied sends no body at all.
	PropfindAllPropertiesImplied
)

// String returns the name of the request type.
func (t PropfindRequestType) String() string {
	switch t {
	case PropfindAllProperties:
		return "AllProperties"
	case PropfindNamedProperties:
		return "NamedProperties"
	case PropfindAllPropertiesImplied:
		return "AllPropertiesImplied"
	}
	return "PropfindRequestType(" + strconv.Itoa(int(t)) + ")"
}
