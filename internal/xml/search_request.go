package xml

import (
	"fmt"

	"github.com/cyp0633/libwebdav/dav"
)

// SearchRequest describes a DASL basicsearch "like" query.
type SearchRequest struct {
	// Scope is the href searched, always with infinite depth.
	Scope string
	// SelectProperties are returned for each match; all properties if empty.
	SelectProperties []dav.PropertyName
	SearchProperty   dav.PropertyName
	SearchKeyword    string
	Namespaces       []dav.NamespaceAttr
}

// Validate checks the fields a server needs to run the query.
func (r SearchRequest) Validate() error {
	switch {
	case r.Scope == "":
		return fmt.Errorf("%w: search scope is required", dav.ErrInvalidArgument)
	case r.SearchProperty.Local == "":
		return fmt.Errorf("%w: search property is required", dav.ErrInvalidArgument)
	case r.SearchKeyword == "":
		return fmt.Errorf("%w: search keyword is required", dav.ErrInvalidArgument)
	}
	return nil
}

// BuildSearchRequest renders a SEARCH body.
func BuildSearchRequest(r SearchRequest) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	doc, root := newRequestDocument(TagSearchrequest)
	scope := newNamespaceScope()
	scope.declare(root, r.Namespaces)

	basic := createDAVElement(root, TagBasicsearch)

	sel := createDAVElement(basic, TagSelect)
	if len(r.SelectProperties) > 0 {
		prop := createDAVElement(sel, TagProp)
		for _, name := range r.SelectProperties {
			scope.createElement(prop, name)
		}
	} else {
		createDAVElement(sel, TagAllprop)
	}

	searchScope := createDAVElement(createDAVElement(basic, TagFrom), TagScope)
	createDAVElement(searchScope, TagHref).SetText(r.Scope)
	createDAVElement(searchScope, TagDepth).SetText(DepthInfinity)

	like := createDAVElement(createDAVElement(basic, TagWhere), TagLike)
	scope.createElement(createDAVElement(like, TagProp), r.SearchProperty)
	createDAVElement(like, TagLiteral).SetText(r.SearchKeyword)

	return doc.WriteToString()
}
