package xml

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/cyp0633/libwebdav/dav"
)

// ParsePropfindResponse turns a multistatus body into resources, one per
// <response> element in document order. An empty or malformed body yields no
// resources and keeps the given status.
func ParsePropfindResponse(body string, statusCode int, description string) dav.PropfindResponse {
	resp := dav.PropfindResponse{
		Response:  dav.NewResponse(statusCode, description),
		Resources: []dav.Resource{},
	}

	root := parseRoot(body)
	if root == nil {
		return resp
	}

	for _, el := range FindChildren(root, TagResponse) {
		resp.Resources = append(resp.Resources, parseResource(el))
	}
	return resp
}

func parseResource(response *etree.Element) dav.Resource {
	href := ""
	if el := FindChild(response, TagHref); el != nil {
		href = strings.TrimSpace(ElementText(el))
	}

	propstats := ParsePropstats(response)
	statuses := PropertyStatuses(propstats)
	props := uniqueProperties(SuccessfulProperties(propstats))

	builder := dav.NewResourceBuilder().
		WithActiveLocks(ParseLockDiscovery(findProp(props, TagLockdiscovery))).
		WithContentLanguage(ParseString(findProp(props, TagGetContentLanguage))).
		WithContentLength(ParseLong(findProp(props, TagGetContentLength))).
		WithContentType(ParseString(findProp(props, TagGetContentType))).
		WithCreationDate(ParseDateTime(findProp(props, TagCreationDate))).
		WithDisplayName(ParseString(findProp(props, TagDisplayName))).
		WithETag(ParseString(findProp(props, TagGetEtag))).
		WithLastModifiedDate(ParseDateTime(findProp(props, TagGetLastModified))).
		WithProperties(toProperties(props)).
		WithPropertyStatuses(statuses)

	if ParseInteger(findProp(props, TagIsHidden)).OrElse(0) > 0 {
		builder.IsHidden()
	}

	isCollection := ParseInteger(findProp(props, TagIsCollection)).OrElse(0) > 0 ||
		ParseResourceType(findProp(props, TagResourcetype)).OrElse(dav.ResourceTypeOther) == dav.ResourceTypeCollection
	if isCollection {
		builder.IsCollection().WithURI(strings.TrimRight(href, "/") + "/")
	} else {
		builder.WithURI(href)
	}

	return builder.Build()
}

// uniqueProperties keeps the first element of each qualified name.
func uniqueProperties(props []*etree.Element) []*etree.Element {
	seen := make(map[dav.PropertyName]bool, len(props))
	unique := make([]*etree.Element, 0, len(props))
	for _, p := range props {
		name := QualifiedName(p)
		if seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, p)
	}
	return unique
}

// findProp looks up a standard property in the DAV: namespace.
func findProp(props []*etree.Element, local string) *etree.Element {
	want := dav.DAVName(local)
	for _, p := range props {
		if QualifiedName(p) == want {
			return p
		}
	}
	return nil
}

func toProperties(props []*etree.Element) []dav.Property {
	out := make([]dav.Property, 0, len(props))
	for _, p := range props {
		out = append(out, dav.NewProperty(QualifiedName(p), InnerXML(p)))
	}
	return out
}
