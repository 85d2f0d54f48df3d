package xml

import (
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/cyp0633/libwebdav/dav"
)

// FindChild returns the first child element whose local name matches, ignoring
// namespace and case. It returns nil if el is nil or nothing matches.
func FindChild(el *etree.Element, local string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, child := range el.ChildElements() {
		if strings.EqualFold(child.Tag, local) {
			return child
		}
	}
	return nil
}

// FindChildren returns every child element whose local name matches, ignoring
// namespace and case.
func FindChildren(el *etree.Element, local string) []*etree.Element {
	if el == nil {
		return nil
	}
	var found []*etree.Element
	for _, child := range el.ChildElements() {
		if strings.EqualFold(child.Tag, local) {
			found = append(found, child)
		}
	}
	return found
}

// ElementText concatenates all character data below el.
func ElementText(el *etree.Element) string {
	var sb strings.Builder
	writeText(&sb, el)
	return sb.String()
}

func writeText(sb *strings.Builder, el *etree.Element) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			writeText(sb, t)
		}
	}
}

// QualifiedName resolves the namespace of el. A prefix with no declaration in
// scope is kept as the namespace, except "D" which is taken to mean DAV:.
func QualifiedName(el *etree.Element) dav.PropertyName {
	ns := el.NamespaceURI()
	if ns == "" && el.Space != "" {
		ns = el.Space
		if strings.EqualFold(el.Space, DAVPrefix) {
			ns = DAV
		}
	}
	return dav.PropertyName{Namespace: ns, Local: el.Tag}
}

// InnerXML serializes the content of el. Namespace prefixes declared on
// ancestors are re-declared on the copied top-level elements. Quotes and
// apostrophes in text are written as-is.
func InnerXML(el *etree.Element) string {
	if el == nil {
		return ""
	}
	doc := etree.NewDocument()
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			cp := t.Copy()
			for _, decl := range outerDeclarations(t) {
				cp.CreateAttr(decl[0], decl[1])
			}
			doc.AddChild(cp)
		case *etree.CharData:
			if t.IsCData() {
				doc.AddChild(etree.NewCData(t.Data))
			} else {
				doc.AddChild(etree.NewText(t.Data))
			}
		case *etree.Comment:
			doc.AddChild(etree.NewComment(t.Data))
		}
	}
	doc.WriteSettings.CanonicalText = true
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// outerDeclarations lists the namespace declarations the subtree rooted at top
// relies on but does not contain, as (attribute key, uri) pairs.
func outerDeclarations(top *etree.Element) [][2]string {
	needed := make(map[string]string)
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		if _, seen := needed[e.Space]; !seen && !declaredWithin(e, top, e.Space) {
			if uri := e.NamespaceURI(); uri != "" {
				needed[e.Space] = uri
			}
		}
		for _, child := range e.ChildElements() {
			walk(child)
		}
	}
	walk(top)

	keys := make([]string, 0, len(needed))
	for prefix := range needed {
		keys = append(keys, prefix)
	}
	sort.Strings(keys)

	decls := make([][2]string, 0, len(keys))
	for _, prefix := range keys {
		key := "xmlns"
		if prefix != "" {
			key += ":" + prefix
		}
		decls = append(decls, [2]string{key, needed[prefix]})
	}
	return decls
}

func declaredWithin(e, top *etree.Element, prefix string) bool {
	key := "xmlns"
	if prefix != "" {
		key += ":" + prefix
	}
	for cur := e; cur != nil; cur = cur.Parent() {
		if cur.SelectAttr(key) != nil {
			return true
		}
		if cur == top {
			break
		}
	}
	return false
}

// parseRoot reads body into a tree. Empty or malformed input yields nil.
func parseRoot(body string) *etree.Element {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil
	}
	return doc.Root()
}

// childElements is ChildElements that tolerates a nil element.
func childElements(el *etree.Element) []*etree.Element {
	if el == nil {
		return nil
	}
	return el.ChildElements()
}
