package davclient

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
)

// SendFunc is a function type for mocking Dispatcher.Send
type SendFunc func(ctx context.Context, req *DispatchRequest) (*DispatchResponse, error)

// mockDispatcher records every request and answers with a canned response.
type mockDispatcher struct {
	mu       sync.Mutex
	requests []*DispatchRequest
	bodies   []string

	statusCode  int
	reason      string
	contentType string
	body        string
	err         error
	doSend      SendFunc
}

func (m *mockDispatcher) Send(ctx context.Context, req *DispatchRequest) (*DispatchResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	body := ""
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		body = string(data)
	}
	m.bodies = append(m.bodies, body)
	m.mu.Unlock()

	if m.doSend != nil {
		return m.doSend(ctx, req)
	}
	if m.err != nil {
		return nil, m.err
	}

	code := m.statusCode
	if code == 0 {
		code = http.StatusOK
	}
	reason := m.reason
	if reason == "" {
		reason = http.StatusText(code)
	}
	header := http.Header{}
	if m.contentType != "" {
		header.Set("Content-Type", m.contentType)
	}
	return &DispatchResponse{
		StatusCode: code,
		Reason:     reason,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(m.body)),
	}, nil
}

// lastRequest returns the most recent request and its body.
func (m *mockDispatcher) lastRequest() (*DispatchRequest, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil, ""
	}
	i := len(m.requests) - 1
	return m.requests[i], m.bodies[i]
}

func (m *mockDispatcher) requestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
