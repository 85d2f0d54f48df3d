package davclient

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cyp0633/libwebdav/dav"
	"github.com/cyp0633/libwebdav/internal/xml"
	"github.com/samber/mo"
)

const xmlContentType = "text/xml; charset=utf-8"

// headerBuilder collects the headers of one request.
type headerBuilder struct {
	h http.Header
}

func newHeaderBuilder() *headerBuilder {
	return &headerBuilder{h: http.Header{}}
}

func (b *headerBuilder) set(key, value string) *headerBuilder {
	b.h.Set(key, value)
	return b
}

// ifLockToken adds an If header for token. Each call adds a separate header.
func (b *headerBuilder) ifLockToken(token string) *headerBuilder {
	if token != "" {
		b.h.Add("If", "(<"+token+">)")
	}
	return b
}

// build applies the caller headers, each replacing any value already set
// under the same key.
func (b *headerBuilder) build(overrides http.Header) http.Header {
	for key, values := range overrides {
		b.h[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}
	return b.h
}

func propfindDepth(applyTo mo.Option[dav.ApplyTo]) (string, error) {
	switch v := applyTo.OrElse(dav.ApplyToResourceAndChildren); v {
	case dav.ApplyToResourceOnly:
		return "0", nil
	case dav.ApplyToResourceAndChildren:
		return "1", nil
	case dav.ApplyToResourceAndAncestors:
		return xml.DepthInfinity, nil
	default:
		return "", fmt.Errorf("PROPFIND depth %v: %w", v, dav.ErrOutOfRange)
	}
}

// lockDepth maps the depths COPY and LOCK accept; both have no "1".
func lockDepth(applyTo dav.ApplyTo) (string, error) {
	switch applyTo {
	case dav.ApplyToResourceOnly:
		return "0", nil
	case dav.ApplyToResourceAndAncestors:
		return xml.DepthInfinity, nil
	default:
		return "", fmt.Errorf("depth %v: %w", applyTo, dav.ErrOutOfRange)
	}
}

func overwriteValue(overwrite mo.Option[bool]) string {
	if overwrite.OrElse(true) {
		return "T"
	}
	return "F"
}

func translateValue(translate bool) string {
	if translate {
		return "t"
	}
	return "f"
}

// timeoutValue formats a lock timeout as "Second-N".
func timeoutValue(d time.Duration) string {
	return "Second-" + strconv.FormatInt(int64(d/time.Second), 10)
}

func contentTypeOr(contentType string) string {
	if contentType != "" {
		return contentType
	}
	return xmlContentType
}
