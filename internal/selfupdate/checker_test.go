package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, tag string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/docdot/docdot/releases/latest", r.URL.Path)
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/release"}`, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_UpdateAvailable(t *testing.T) {
	srv := newTestServer(t, "v1.2.0", http.StatusOK)
	c := NewChecker("docdot", "docdot", WithAPIBaseURL(srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Equal(t, "v1.1.0", result.CurrentVersion)
	assert.Equal(t, "https://example.com/release", result.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	srv := newTestServer(t, "v1.1.0", http.StatusOK)
	c := NewChecker("docdot", "docdot", WithAPIBaseURL(srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_NewerLocalVersion(t *testing.T) {
	srv := newTestServer(t, "v1.0.0", http.StatusOK)
	c := NewChecker("docdot", "docdot", WithAPIBaseURL(srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_VersionWithoutPrefix(t *testing.T) {
	srv := newTestServer(t, "v2.0.0", http.StatusOK)
	c := NewChecker("docdot", "docdot", WithAPIBaseURL(srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "1.9.3"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.9.3", result.CurrentVersion)
}

func TestCheck_DevBuild(t *testing.T) {
	c := NewChecker("docdot", "docdot")

	_, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestCheck_ServerError(t *testing.T) {
	srv := newTestServer(t, "v1.2.0", http.StatusInternalServerError)
	c := NewChecker("docdot", "docdot", WithAPIBaseURL(srv.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	assert.Error(t, err)
}

func TestCheck_InvalidTag(t *testing.T) {
	srv := newTestServer(t, "nightly", http.StatusOK)
	c := NewChecker("docdot", "docdot", WithAPIBaseURL(srv.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	assert.Error(t, err)
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{"(devel)", ""},
		{"dev", ""},
		{"", ""},
		{"not-a-version", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeVersion(tt.in), "input %q", tt.in)
	}
}
