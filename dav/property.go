package dav

import (
	"strings"

	"github.com/samber/mo"
)

// Namespace is the WebDAV namespace URI.
const Namespace = "DAV:"

// PropertyName is a qualified XML name in the {namespace}local convention.
type PropertyName struct {
	Namespace string
	Local     string
}

// DAVName returns the name of a property in the DAV: namespace.
func DAVName(local string) PropertyName {
	return PropertyName{Namespace: Namespace, Local: local}
}

// NewPropertyName returns a property name in an arbitrary namespace.
func NewPropertyName(namespace, local string) PropertyName {
	return PropertyName{Namespace: namespace, Local: local}
}

// ParsePropertyName parses "{namespace}local" or a bare local name.
func ParsePropertyName(s string) PropertyName {
	if strings.HasPrefix(s, "{") {
		if end := strings.Index(s, "}"); end > 0 {
			return PropertyName{Namespace: s[1:end], Local: s[end+1:]}
		}
	}
	return PropertyName{Local: s}
}

// String renders the name as {namespace}local.
func (n PropertyName) String() string {
	if n.Namespace == "" {
		return n.Local
	}
	return "{" + n.Namespace + "}" + n.Local
}

// NamespaceAttr declares a namespace emitted on request bodies. An empty Prefix
// declares the default namespace.
type NamespaceAttr struct {
	Prefix    string
	Namespace string
}

// NewNamespaceAttr declares prefix for namespace.
func NewNamespaceAttr(prefix, namespace string) NamespaceAttr {
	return NamespaceAttr{Prefix: prefix, Namespace: namespace}
}

// NewDefaultNamespaceAttr declares the default namespace.
func NewDefaultNamespaceAttr(namespace string) NamespaceAttr {
	return NamespaceAttr{Namespace: namespace}
}

// IsDefault reports whether the attribute declares the default namespace.
func (a NamespaceAttr) IsDefault() bool {
	return a.Prefix == ""
}

// AttrKey is the attribute name used to declare the namespace.
func (a NamespaceAttr) AttrKey() string {
	if a.IsDefault() {
		return "xmlns"
	}
	return "xmlns:" + a.Prefix
}

// Property is a resource property. Value holds the inner XML of the element.
type Property struct {
	Name  PropertyName
	Value string
}

// NewProperty returns a property holding value as inner XML.
func NewProperty(name PropertyName, value string) Property {
	return Property{Name: name, Value: value}
}

// PropertyStatus is the outcome the server reported for a single property.
type PropertyStatus struct {
	Name        PropertyName
	StatusCode  int
	Description mo.Option[string]
}

// IsSuccessful reports whether the status code is 2xx.
func (s PropertyStatus) IsSuccessful() bool {
	return isSuccessStatus(s.StatusCode)
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code <= 299
}
