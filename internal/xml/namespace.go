package xml

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/cyp0633/libwebdav/dav"
)

// Namespace definitions for request bodies
const (
	// DAV is the WebDAV namespace
	DAV = dav.Namespace
	// DAVPrefix is the prefix every builder binds DAV to on the document root
	DAVPrefix = "D"
)

// newRequestDocument creates a document with an XML declaration and a DAV:
// root element carrying the xmlns:D declaration.
func newRequestDocument(tag string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement(DAVPrefix + ":" + tag)
	root.CreateAttr("xmlns:"+DAVPrefix, DAV)
	return doc, root
}

// createDAVElement appends a D:-prefixed child.
func createDAVElement(parent *etree.Element, tag string) *etree.Element {
	return parent.CreateElement(DAVPrefix + ":" + tag)
}

// namespaceScope tracks the declarations in effect while a request body is
// emitted, so property elements can be given the right prefix.
type namespaceScope struct {
	prefixes  map[string]string
	order     []string
	defaultNS string
}

func newNamespaceScope() *namespaceScope {
	return &namespaceScope{
		prefixes: map[string]string{DAVPrefix: DAV},
		order:    []string{DAVPrefix},
	}
}

// declare writes the namespace attributes onto el. A repeated prefix, or a
// repeated default namespace, overwrites the earlier declaration.
func (s *namespaceScope) declare(el *etree.Element, namespaces []dav.NamespaceAttr) {
	for _, ns := range namespaces {
		el.CreateAttr(ns.AttrKey(), ns.Namespace)
		if ns.IsDefault() {
			s.defaultNS = ns.Namespace
			continue
		}
		if _, ok := s.prefixes[ns.Prefix]; !ok {
			s.order = append(s.order, ns.Prefix)
		}
		s.prefixes[ns.Prefix] = ns.Namespace
	}
}

func (s *namespaceScope) prefixFor(uri string) (string, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		if p := s.order[i]; s.prefixes[p] == uri {
			return p, true
		}
	}
	return "", false
}

// createElement appends an element for name under parent. Namespaces that are
// not in scope are declared on the element itself.
func (s *namespaceScope) createElement(parent *etree.Element, name dav.PropertyName) *etree.Element {
	el := parent.CreateElement(name.Local)
	switch {
	case name.Namespace == "":
		if s.defaultNS != "" {
			el.CreateAttr("xmlns", "")
		}
	default:
		if prefix, ok := s.prefixFor(name.Namespace); ok {
			el.Space = prefix
		} else if name.Namespace != s.defaultNS {
			el.CreateAttr("xmlns", name.Namespace)
		}
	}
	return el
}

// wrapperStart renders an opening tag declaring every namespace in scope, used
// to parse caller-supplied XML fragments with the same prefixes.
func (s *namespaceScope) wrapperStart(tag string) string {
	var sb strings.Builder
	sb.WriteString("<" + tag)
	for _, p := range s.order {
		sb.WriteString(" xmlns:" + p + `="` + attrEscaper.Replace(s.prefixes[p]) + `"`)
	}
	if s.defaultNS != "" {
		sb.WriteString(` xmlns="` + attrEscaper.Replace(s.defaultNS) + `"`)
	}
	sb.WriteString(">")
	return sb.String()
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `"`, "&quot;")
