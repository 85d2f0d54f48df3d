package xml

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

// mustParseElement parses s and returns its root element.
func mustParseElement(t *testing.T, s string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(s))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

// readFixture returns the contents of testdata/name.
func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

var (
	xmlDeclRe    = regexp.MustCompile(`<\?xml[^>]*\?>`)
	interTagWsRe = regexp.MustCompile(`>\s+<`)
)

// normalizeXML removes the declaration and whitespace between tags for comparisons
func normalizeXML(s string) string {
	s = xmlDeclRe.ReplaceAllString(s, "")
	s = interTagWsRe.ReplaceAllString(s, "><")
	return strings.TrimSpace(s)
}
