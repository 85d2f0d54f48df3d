package xml

import (
	"github.com/beevik/etree"
	"github.com/cyp0633/libwebdav/dav"
)

// BuildProppatchRequest renders a PROPPATCH body. Each property gets its own
// <prop> inside <set> or <remove>; empty groups are left out.
func BuildProppatchRequest(set []dav.Property, remove []dav.PropertyName, namespaces []dav.NamespaceAttr) (string, error) {
	doc, root := newRequestDocument(TagPropertyUpdate)
	scope := newNamespaceScope()
	scope.declare(root, namespaces)

	if len(set) > 0 {
		setEl := createDAVElement(root, TagSet)
		for _, p := range set {
			el := scope.createElement(createDAVElement(setEl, TagProp), p.Name)
			setInnerXML(el, p.Value, scope)
		}
	}

	if len(remove) > 0 {
		removeEl := createDAVElement(root, TagRemove)
		for _, name := range remove {
			scope.createElement(createDAVElement(removeEl, TagProp), name)
		}
	}

	return doc.WriteToString()
}

// setInnerXML parses value as an XML fragment and moves its nodes under el.
// A value that is not well-formed XML is set as plain text.
func setInnerXML(el *etree.Element, value string, scope *namespaceScope) {
	if value == "" {
		return
	}
	frag := etree.NewDocument()
	if err := frag.ReadFromString(scope.wrapperStart("fragment") + value + "</fragment>"); err != nil || frag.Root() == nil {
		el.SetText(value)
		return
	}
	children := append([]etree.Token(nil), frag.Root().Child...)
	for _, tok := range children {
		el.AddChild(tok)
	}
}
