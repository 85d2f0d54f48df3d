package xml

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/cyp0633/libwebdav/dav"
	"github.com/samber/mo"
)

// Property values are best-effort: a missing element or text that does not
// parse yields None, never an error.

// ParseString returns the text below el, whitespace included.
func ParseString(el *etree.Element) mo.Option[string] {
	if el == nil {
		return mo.None[string]()
	}
	return mo.Some(ElementText(el))
}

// optionalText is ParseString with surrounding whitespace removed.
func optionalText(el *etree.Element) mo.Option[string] {
	if s, ok := ParseString(el).Get(); ok {
		return mo.Some(strings.TrimSpace(s))
	}
	return mo.None[string]()
}

// ParseInteger parses el as a decimal int.
func ParseInteger(el *etree.Element) mo.Option[int] {
	if el == nil {
		return mo.None[int]()
	}
	v, err := strconv.Atoi(strings.TrimSpace(ElementText(el)))
	if err != nil {
		return mo.None[int]()
	}
	return mo.Some(v)
}

// ParseLong parses 64-bit values such as getcontentlength of large files.
func ParseLong(el *etree.Element) mo.Option[int64] {
	if el == nil {
		return mo.None[int64]()
	}
	v, err := strconv.ParseInt(strings.TrimSpace(ElementText(el)), 10, 64)
	if err != nil {
		return mo.None[int64]()
	}
	return mo.Some(v)
}

// creationdate is ISO 8601, getlastmodified is an RFC 1123 HTTP date; servers
// mix them up, so both families are accepted for either property.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.ANSIC,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDateTime parses el with the first date layout that fits.
func ParseDateTime(el *etree.Element) mo.Option[time.Time] {
	if el == nil {
		return mo.None[time.Time]()
	}
	text := strings.TrimSpace(ElementText(el))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return mo.Some(t)
		}
	}
	return mo.None[time.Time]()
}

// ParseResourceType reports whether a resourcetype element marks a collection.
func ParseResourceType(el *etree.Element) mo.Option[dav.ResourceType] {
	if el == nil {
		return mo.None[dav.ResourceType]()
	}
	if FindChild(el, TagCollection) != nil {
		return mo.Some(dav.ResourceTypeCollection)
	}
	return mo.Some(dav.ResourceTypeOther)
}

// ParseLockScope reads the shared or exclusive child of a lockscope element.
func ParseLockScope(el *etree.Element) mo.Option[dav.LockScope] {
	switch {
	case FindChild(el, TagShared) != nil:
		return mo.Some(dav.LockScopeShared)
	case FindChild(el, TagExclusive) != nil:
		return mo.Some(dav.LockScopeExclusive)
	}
	return mo.None[dav.LockScope]()
}

// ParseLockDepth maps "0" to ResourceOnly and anything else, malformed text
// included, to ResourceAndAncestors.
func ParseLockDepth(el *etree.Element) mo.Option[dav.ApplyTo] {
	if el == nil {
		return mo.None[dav.ApplyTo]()
	}
	if strings.TrimSpace(ElementText(el)) == "0" {
		return mo.Some(dav.ApplyToResourceOnly)
	}
	return mo.Some(dav.ApplyToResourceAndAncestors)
}

// ParseOwner returns a URI owner when <href> holds an absolute URI, otherwise a
// principal owner built from the element text.
func ParseOwner(el *etree.Element) mo.Option[dav.LockOwner] {
	if el == nil {
		return mo.None[dav.LockOwner]()
	}
	if href := FindChild(el, TagHref); href != nil {
		if uri := strings.TrimSpace(ElementText(href)); isAbsoluteURI(uri) {
			return mo.Some(dav.URILockOwner(uri))
		}
	}
	if text := strings.TrimSpace(ElementText(el)); text != "" {
		return mo.Some(dav.PrincipalLockOwner(text))
	}
	return mo.None[dav.LockOwner]()
}

func isAbsoluteURI(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// maxTimeoutSeconds is the largest timeout a time.Duration can hold.
const maxTimeoutSeconds = math.MaxInt64 / int64(time.Second)

// ParseLockTimeout parses "Second-N". Infinite timeouts are reported as None,
// the same as a missing, malformed or unrepresentable timeout.
func ParseLockTimeout(el *etree.Element) mo.Option[time.Duration] {
	if el == nil {
		return mo.None[time.Duration]()
	}
	text := strings.TrimSpace(ElementText(el))
	if strings.EqualFold(text, "infinity") {
		return mo.None[time.Duration]()
	}
	const prefix = "second-"
	if len(text) > len(prefix) && strings.EqualFold(text[:len(prefix)], prefix) {
		secs, err := strconv.ParseInt(text[len(prefix):], 10, 64)
		if err == nil && secs >= 0 && secs <= maxTimeoutSeconds {
			return mo.Some(time.Duration(secs) * time.Second)
		}
	}
	return mo.None[time.Duration]()
}
