package xml

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/cyp0633/libwebdav/dav"
	"github.com/samber/mo"
)

// Propstat pairs a <propstat> element with the status it reports. StatusCode
// is 0 when the status line is missing or has no three-digit code.
type Propstat struct {
	Element     *etree.Element
	StatusCode  int
	Description mo.Option[string]
}

// IsSuccessful reports whether the propstat status is 2xx.
func (p Propstat) IsSuccessful() bool {
	return p.StatusCode >= 200 && p.StatusCode <= 299
}

var statusCodeRe = regexp.MustCompile(`\d{3}`)

// ParsePropstats collects the propstat blocks of a <response> element.
func ParsePropstats(response *etree.Element) []Propstat {
	var propstats []Propstat
	for _, el := range FindChildren(response, TagPropstat) {
		ps := Propstat{Element: el}

		if status := FindChild(el, TagStatus); status != nil {
			line := strings.TrimSpace(ElementText(status))
			ps.StatusCode = parseStatusCode(line)
			ps.Description = mo.Some(line)
		}
		if desc := FindChild(el, TagResponseDesc); desc != nil {
			ps.Description = mo.Some(strings.TrimSpace(ElementText(desc)))
		}

		propstats = append(propstats, ps)
	}
	return propstats
}

func parseStatusCode(line string) int {
	match := statusCodeRe.FindString(line)
	if match == "" {
		return 0
	}
	code, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return code
}

// PropertyStatuses flattens every property of every propstat into a status
// entry, successful or not.
func PropertyStatuses(propstats []Propstat) []dav.PropertyStatus {
	var statuses []dav.PropertyStatus
	for _, ps := range propstats {
		for _, prop := range childElements(FindChild(ps.Element, TagProp)) {
			statuses = append(statuses, dav.PropertyStatus{
				Name:        QualifiedName(prop),
				StatusCode:  ps.StatusCode,
				Description: ps.Description,
			})
		}
	}
	return statuses
}

// SuccessfulProperties returns the property elements of the 2xx propstats.
func SuccessfulProperties(propstats []Propstat) []*etree.Element {
	var props []*etree.Element
	for _, ps := range propstats {
		if !ps.IsSuccessful() {
			continue
		}
		props = append(props, childElements(FindChild(ps.Element, TagProp))...)
	}
	return props
}
