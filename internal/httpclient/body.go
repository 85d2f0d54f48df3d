package httpclient

import (
	"fmt"
	"io"
	"mime"

	"golang.org/x/net/html/charset"
)

// DecodeBody reads body as text in the charset named by contentType. A missing
// or unknown charset is read as UTF-8.
func DecodeBody(body io.Reader, contentType string) (string, error) {
	if body == nil {
		return "", nil
	}

	r := body
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		if name, ok := params["charset"]; ok {
			if enc, _ := charset.Lookup(name); enc != nil {
				r = enc.NewDecoder().Reader(body)
			}
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(data), nil
}
