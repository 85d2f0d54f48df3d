package xml

import (
	"github.com/cyp0633/libwebdav/dav"
	"github.com/samber/mo"
)

// BuildPropfindRequest renders a PROPFIND body. It returns None for
// PropfindAllPropertiesImplied, which is sent without a body.
//
// Namespaces are declared on the <include> or <prop> element that lists the
// custom properties, not on each property.
func BuildPropfindRequest(kind dav.PropfindRequestType, props []dav.PropertyName, namespaces []dav.NamespaceAttr) mo.Option[string] {
	if kind == dav.PropfindAllPropertiesImplied {
		return mo.None[string]()
	}

	doc, root := newRequestDocument(TagPropfind)
	scope := newNamespaceScope()

	if kind == dav.PropfindNamedProperties {
		prop := createDAVElement(root, TagProp)
		scope.declare(prop, namespaces)
		for _, name := range props {
			scope.createElement(prop, name)
		}
	} else {
		createDAVElement(root, TagAllprop)
		if len(props) > 0 {
			include := createDAVElement(root, TagInclude)
			scope.declare(include, namespaces)
			for _, name := range props {
				scope.createElement(include, name)
			}
		}
	}

	s, err := doc.WriteToString()
	if err != nil {
		return mo.None[string]()
	}
	return mo.Some(s)
}
