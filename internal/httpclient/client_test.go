package httpclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/cyp0633/libwebdav/dav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTransport struct {
	response *http.Response
	err      error
	request  *http.Request
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.request = req
	return m.response, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDispatcher(t *testing.T, mock *mockTransport) Dispatcher {
	t.Helper()
	d, err := NewDispatcher(&http.Client{Transport: mock}, discardLogger())
	require.NoError(t, err)
	return d
}

func mustParseURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestNewDispatcherRequiresDependencies(t *testing.T) {
	_, err := NewDispatcher(nil, discardLogger())
	assert.Error(t, err)
	_, err = NewDispatcher(http.DefaultClient, nil)
	assert.Error(t, err)
}

func TestSend(t *testing.T) {
	tests := []struct {
		name            string
		status          string
		code            int
		reqHeader       http.Header
		contentType     string
		body            string
		wantReason      string
		wantContentType string
	}{
		{
			name:            "multistatus",
			status:          "207 Multi-Status",
			code:            207,
			contentType:     "text/xml; charset=utf-8",
			body:            "<D:propfind/>",
			wantReason:      "Multi-Status",
			wantContentType: "text/xml; charset=utf-8",
		},
		{
			name:            "custom reason phrase",
			status:          "200 Fine By Me",
			code:            200,
			wantReason:      "Fine By Me",
			wantContentType: "",
		},
		{
			name:            "missing reason phrase",
			status:          "404",
			code:            404,
			wantReason:      "Not Found",
			wantContentType: "",
		},
		{
			name:            "header content type wins",
			status:          "201 Created",
			code:            201,
			reqHeader:       http.Header{"Content-Type": {"application/xml"}},
			contentType:     "text/xml; charset=utf-8",
			body:            "<x/>",
			wantReason:      "Created",
			wantContentType: "application/xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockTransport{response: &http.Response{
				Status:     tt.status,
				StatusCode: tt.code,
				Header:     http.Header{"Dav": {"1, 2"}},
				Body:       io.NopCloser(strings.NewReader("payload")),
			}}
			d := newTestDispatcher(t, mock)

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			resp, err := d.Send(context.Background(), &Request{
				URL:         mustParseURL(t, "http://example.com/dav/"),
				Method:      "PROPFIND",
				Header:      tt.reqHeader,
				Body:        body,
				ContentType: tt.contentType,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.code, resp.StatusCode)
			assert.Equal(t, tt.wantReason, resp.Reason)
			assert.Equal(t, "1, 2", resp.Header.Get("DAV"))
			assert.Equal(t, "PROPFIND", mock.request.Method)
			assert.Equal(t, tt.wantContentType, mock.request.Header.Get("Content-Type"))

			data, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, "payload", string(data))
		})
	}
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestSendStreaming(t *testing.T) {
	for _, stream := range []bool{true, false} {
		body := &trackingBody{Reader: bytes.NewReader([]byte("file contents"))}
		mock := &mockTransport{response: &http.Response{
			Status: "200 OK", StatusCode: 200, Header: http.Header{}, Body: body,
		}}

		resp, err := newTestDispatcher(t, mock).Send(context.Background(), &Request{
			URL:    mustParseURL(t, "http://example.com/file"),
			Method: http.MethodGet,
			Stream: stream,
		})
		require.NoError(t, err)
		assert.Equal(t, !stream, body.closed, "stream=%v", stream)

		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "file contents", string(data))
		require.NoError(t, resp.Close())
		assert.True(t, body.closed)
	}
}

func TestSendCancelled(t *testing.T) {
	mock := &mockTransport{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := newTestDispatcher(t, mock).Send(ctx, &Request{
		URL:    mustParseURL(t, "http://example.com/"),
		Method: http.MethodDelete,
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, mock.request, "cancelled request must not reach the transport")
}

func TestSendTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	mock := &mockTransport{err: boom}

	resp, err := newTestDispatcher(t, mock).Send(context.Background(), &Request{
		URL:    mustParseURL(t, "http://example.com/"),
		Method: "MKCOL",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, boom)
}

func TestSendWithoutURL(t *testing.T) {
	_, err := newTestDispatcher(t, &mockTransport{}).Send(context.Background(), &Request{Method: "MKCOL"})
	assert.ErrorIs(t, err, dav.ErrInvalidArgument)
}

func TestResolveURL(t *testing.T) {
	base := mustParseURL(t, "http://example.com/dav/")
	tests := []struct {
		name    string
		base    *url.URL
		target  string
		want    string
		wantErr error
	}{
		{"relative", base, "docs/a.txt", "http://example.com/dav/docs/a.txt", nil},
		{"rooted", base, "/other", "http://example.com/other", nil},
		{"absolute ignores base", base, "https://other.org/x", "https://other.org/x", nil},
		{"absolute without base", nil, "https://other.org/x", "https://other.org/x", nil},
		{"empty target is the base", base, "", "http://example.com/dav/", nil},
		{"relative without base", nil, "docs/a.txt", "", dav.ErrNoBaseAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveURL(tt.base, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestResolveURLParseError(t *testing.T) {
	_, err := ResolveURL(nil, "http://[::1")
	assert.Error(t, err)
}
