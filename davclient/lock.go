package davclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/cyp0633/libwebdav/dav"
	"github.com/cyp0633/libwebdav/internal/xml"
)

// Lock takes a write lock on target. A zero LockScope requests a shared lock.
// The lock body of a non-2xx response is not parsed.
func (c *Client) Lock(ctx context.Context, target string, params LockParams) (dav.LockResponse, error) {
	c.logger.Debug("starting LOCK request",
		"url", target,
		"scope", params.LockScope.String())

	scope := params.LockScope
	if scope == 0 {
		scope = dav.LockScopeShared
	}
	body, err := xml.BuildLockRequest(scope, params.Owner)
	if err != nil {
		return dav.LockResponse{}, fmt.Errorf("failed to build LOCK body: %w", err)
	}

	hb := newHeaderBuilder()
	if applyTo, ok := params.ApplyTo.Get(); ok {
		depth, err := lockDepth(applyTo)
		if err != nil {
			return dav.LockResponse{}, err
		}
		hb.set("Depth", depth)
	}
	if timeout, ok := params.Timeout.Get(); ok {
		hb.set("Timeout", timeoutValue(timeout))
	}

	resp, err := c.send(ctx, request{
		method:      "LOCK",
		target:      target,
		header:      hb.build(params.Headers),
		body:        strings.NewReader(body),
		contentType: contentTypeOr(params.ContentType),
	})
	if err != nil {
		return dav.LockResponse{}, err
	}

	status := dav.NewResponse(resp.StatusCode, resp.Reason)
	if !status.IsSuccessful() {
		resp.Close()
		c.logger.Debug("LOCK failed", "status", resp.StatusCode, "reason", resp.Reason)
		return dav.LockResponse{Response: status, ActiveLocks: []dav.ActiveLock{}}, nil
	}

	result := xml.ParseLockResponse(c.readBody(resp), resp.StatusCode, resp.Reason)
	c.logger.Debug("LOCK request complete",
		"status", resp.StatusCode,
		"locks", len(result.ActiveLocks),
		"lock_token", resp.Header.Get("Lock-Token"))
	return result, nil
}

// Unlock releases the lock identified by params.LockToken.
func (c *Client) Unlock(ctx context.Context, target string, params UnlockParams) (dav.Response, error) {
	c.logger.Debug("starting UNLOCK request", "url", target)

	if params.LockToken == "" {
		return dav.Response{}, fmt.Errorf("lock token is required: %w", dav.ErrInvalidArgument)
	}
	header := newHeaderBuilder().
		set("Lock-Token", "<"+params.LockToken+">").
		build(params.Headers)

	return c.sendSimple(ctx, request{method: "UNLOCK", target: target, header: header})
}
