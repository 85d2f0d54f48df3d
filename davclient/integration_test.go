package davclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cyp0633/libwebdav/dav"
	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/webdav"
)

// newWebDAVServer starts an in-memory WebDAV server and a client rooted at it.
func newWebDAVServer(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(&webdav.Handler{
		FileSystem: webdav.NewMemFS(),
		LockSystem: webdav.NewMemLS(),
	})
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL + "/"
	cfg.HTTPClient = srv.Client()
	c, err := NewClient(cfg)
	require.NoError(t, err)
	return c
}

func TestMemServerOperations(t *testing.T) {
	ctx := context.Background()
	c := newWebDAVServer(t)
	color := dav.NewPropertyName("urn:libwebdav:test", "color")

	t.Run("Mkcol", func(t *testing.T) {
		resp, err := c.Mkcol(ctx, "docs/", MkcolParams{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Put", func(t *testing.T) {
		resp, err := c.Put(ctx, "docs/a.txt", strings.NewReader("hello"), PutParams{ContentType: "text/plain"})
		require.NoError(t, err)
		assert.True(t, resp.IsSuccessful(), "status %d", resp.StatusCode)
	})

	t.Run("Propfind", func(t *testing.T) {
		resp, err := c.Propfind(ctx, "docs/", PropfindParams{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusMultiStatus, resp.StatusCode)
		require.Len(t, resp.Resources, 2)

		dir := resp.Resources[0]
		assert.Equal(t, "/docs/", dir.URI)
		assert.True(t, dir.IsCollection)

		file := resp.Resources[1]
		assert.Equal(t, "/docs/a.txt", file.URI)
		assert.False(t, file.IsCollection)
		assert.Equal(t, int64(5), file.ContentLength.MustGet())
		assert.True(t, file.ETag.IsPresent())
		assert.True(t, file.LastModifiedDate.IsPresent())
	})

	t.Run("Proppatch", func(t *testing.T) {
		resp, err := c.Proppatch(ctx, "docs/a.txt", ProppatchParams{
			PropertiesToSet: []dav.Property{dav.NewProperty(color, "red")},
			Namespaces:      []dav.NamespaceAttr{dav.NewNamespaceAttr("T", color.Namespace)},
		})
		require.NoError(t, err)
		require.Len(t, resp.PropertyStatuses, 1)
		assert.Equal(t, color, resp.PropertyStatuses[0].Name)
		assert.True(t, resp.PropertyStatuses[0].IsSuccessful())

		found, err := c.Propfind(ctx, "docs/a.txt", PropfindParams{
			RequestType:      dav.PropfindNamedProperties,
			CustomProperties: []dav.PropertyName{color},
			ApplyTo:          mo.Some(dav.ApplyToResourceOnly),
		})
		require.NoError(t, err)
		require.Len(t, found.Resources, 1)
		assert.Equal(t, "red", found.Resources[0].Property(color).MustGet().Value)
	})

	t.Run("LockAndUnlock", func(t *testing.T) {
		resp, err := c.Lock(ctx, "docs/a.txt", LockParams{
			ApplyTo:   mo.Some(dav.ApplyToResourceOnly),
			LockScope: dav.LockScopeExclusive,
			Owner:     mo.Some(dav.PrincipalLockOwner("alice")),
			Timeout:   mo.Some(time.Minute),
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, resp.ActiveLocks, 1)

		lock := resp.ActiveLocks[0]
		token := lock.LockToken.MustGet()
		assert.NotEmpty(t, token)
		assert.Equal(t, dav.ApplyToResourceOnly, lock.ApplyTo.MustGet())
		assert.Equal(t, dav.LockScopeExclusive, lock.LockScope.MustGet())
		assert.Equal(t, dav.PrincipalLockOwner("alice"), lock.Owner.MustGet())
		assert.Equal(t, time.Minute, lock.Timeout.MustGet())
		assert.Equal(t, "/docs/a.txt", lock.LockRoot.MustGet())

		again, err := c.Lock(ctx, "docs/a.txt", LockParams{LockScope: dav.LockScopeExclusive})
		require.NoError(t, err)
		assert.Equal(t, http.StatusLocked, again.StatusCode)
		assert.Empty(t, again.ActiveLocks)

		put, err := c.Put(ctx, "docs/a.txt", strings.NewReader("blocked"), PutParams{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusLocked, put.StatusCode)

		put, err = c.Put(ctx, "docs/a.txt", strings.NewReader("hello"), PutParams{LockToken: token})
		require.NoError(t, err)
		assert.True(t, put.IsSuccessful(), "status %d", put.StatusCode)

		// A token the server never issued.
		unlock, err := c.Unlock(ctx, "docs/a.txt", UnlockParams{LockToken: "urn:uuid:" + uuid.New().String()})
		require.NoError(t, err)
		assert.False(t, unlock.IsSuccessful())

		unlock, err = c.Unlock(ctx, "docs/a.txt", UnlockParams{LockToken: token})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, unlock.StatusCode)
	})

	t.Run("CopyAndMove", func(t *testing.T) {
		resp, err := c.Copy(ctx, "docs/a.txt", "docs/b.txt", CopyParams{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, err = c.Copy(ctx, "docs/a.txt", "docs/b.txt", CopyParams{Overwrite: mo.Some(false)})
		require.NoError(t, err)
		assert.Equal(t, http.StatusPreconditionFailed, resp.StatusCode)

		resp, err = c.Move(ctx, "docs/b.txt", "docs/c.txt", MoveParams{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		gone, err := c.Propfind(ctx, "docs/b.txt", PropfindParams{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, gone.StatusCode)
		assert.Empty(t, gone.Resources)
	})

	t.Run("Get", func(t *testing.T) {
		resp, err := c.GetRaw(ctx, "docs/c.txt", GetParams{})
		require.NoError(t, err)
		defer resp.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("SearchUnsupported", func(t *testing.T) {
		resp, err := c.Search(ctx, "docs/", SearchParams{
			Scope:          "/docs/",
			SearchProperty: dav.DAVName("displayname"),
			SearchKeyword:  "%.txt",
		})
		require.NoError(t, err)
		assert.False(t, resp.IsSuccessful())
		assert.Empty(t, resp.Resources)
	})

	t.Run("Delete", func(t *testing.T) {
		resp, err := c.Delete(ctx, "docs/", DeleteParams{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, err = c.Delete(ctx, "docs/", DeleteParams{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// TestRealServerOperations runs against a real WebDAV server.
// Set these environment variables to run:
// - WEBDAV_SERVER_URL (a writable collection, e.g. "https://cloud.example.com/remote.php/dav/files/alice/")
// - WEBDAV_USERNAME
// - WEBDAV_PASSWORD
func TestRealServerOperations(t *testing.T) {
	serverURL := os.Getenv("WEBDAV_SERVER_URL")
	username := os.Getenv("WEBDAV_USERNAME")
	password := os.Getenv("WEBDAV_PASSWORD")
	if serverURL == "" || username == "" {
		t.Skip("Real server test requires WEBDAV_SERVER_URL, WEBDAV_USERNAME and WEBDAV_PASSWORD environment variables")
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	c, err := NewClient(&Config{
		BaseURL:  serverURL,
		Username: username,
		Password: password,
		Timeout:  30 * time.Second,
		Logger:   logger,
	})
	require.NoError(t, err)

	dir := "libwebdav-" + uuid.New().String() + "/"
	resp, err := c.Mkcol(ctx, dir, MkcolParams{})
	require.NoError(t, err)
	require.True(t, resp.IsSuccessful(), "MKCOL failed: %d %s", resp.StatusCode, resp.Description)
	t.Cleanup(func() {
		if _, err := c.Delete(context.Background(), dir, DeleteParams{}); err != nil {
			t.Logf("cleanup failed: %v", err)
		}
	})

	put, err := c.Put(ctx, dir+"note.txt", strings.NewReader("hello"), PutParams{ContentType: "text/plain"})
	require.NoError(t, err)
	require.True(t, put.IsSuccessful(), "PUT failed: %d", put.StatusCode)

	listing, err := c.Propfind(ctx, dir, PropfindParams{})
	require.NoError(t, err)
	require.True(t, listing.IsSuccessful())
	for _, r := range listing.Resources {
		t.Logf("%s collection=%v length=%v", r.URI, r.IsCollection, r.ContentLength.OrEmpty())
	}
	assert.Len(t, listing.Resources, 2)
}
