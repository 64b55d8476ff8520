package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://example.com/` + tag + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck_UpdateAvailable(t *testing.T) {
	server := releaseServer(t, "v2.0.0")
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v2.0.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/v2.0.0", result.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	server := releaseServer(t, "v1.0.0")
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_BareVersionGetsVPrefix(t *testing.T) {
	server := releaseServer(t, "v1.2.3")
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "1.2.3"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_DevBuildSkipsNetwork(t *testing.T) {
	checker := NewChecker(WithBaseURL("http://127.0.0.1:0"))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
	assert.Empty(t, result.LatestVersion)
}

func TestCheck_InvalidLatestTag(t *testing.T) {
	server := releaseServer(t, "nightly")
	checker := NewChecker(WithBaseURL(server.URL))

	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
