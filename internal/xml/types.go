package xml

// Tag names used in WebDAV bodies. Lookups on responses compare local names
// case-insensitively.
const (
	TagPropfind           = "propfind"
	TagPropertyUpdate     = "propertyupdate"
	TagProp               = "prop"
	TagAllprop            = "allprop"
	TagInclude            = "include"
	TagSet                = "set"
	TagRemove             = "remove"
	TagMultistatus        = "multistatus"
	TagResponse           = "response"
	TagHref               = "href"
	TagPropstat           = "propstat"
	TagStatus             = "status"
	TagResponseDesc       = "responsedescription"
	TagResourcetype       = "resourcetype"
	TagCollection         = "collection"
	TagLockinfo           = "lockinfo"
	TagLockscope          = "lockscope"
	TagLocktype           = "locktype"
	TagWrite              = "write"
	TagShared             = "shared"
	TagExclusive          = "exclusive"
	TagOwner              = "owner"
	TagLockdiscovery      = "lockdiscovery"
	TagActivelock         = "activelock"
	TagDepth              = "depth"
	TagTimeout            = "timeout"
	TagLocktoken          = "locktoken"
	TagLockroot           = "lockroot"
	TagSearchrequest      = "searchrequest"
	TagBasicsearch        = "basicsearch"
	TagSelect             = "select"
	TagFrom               = "from"
	TagScope              = "scope"
	TagWhere              = "where"
	TagLike               = "like"
	TagLiteral            = "literal"
	DepthInfinity         = "infinity"
	TagGetContentLength   = "getcontentlength"
	TagGetContentType     = "getcontenttype"
	TagGetContentLanguage = "getcontentlanguage"
	TagGetEtag            = "getetag"
	TagGetLastModified    = "getlastmodified"
	TagCreationDate       = "creationdate"
	TagDisplayName        = "displayname"
	TagIsCollection       = "iscollection"
	TagIsHidden           = "ishidden"
)
