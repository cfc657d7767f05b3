package search_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"search-provisioner/core/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T) (search.Client, string) {
	t.Helper()
	dir := t.TempDir()
	client := search.NewClient(
		search.Config{TimeoutSeconds: 5, ArtifactDir: dir},
		search.NewFileSink(dir),
		zap.NewNop(),
	)
	return client, dir
}

func TestUpsert_Success(t *testing.T) {
	var gotMethod, gotKey, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotKey = r.Header.Get("api-key")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client, _ := newTestClient(t)
	outcome := client.Upsert(context.Background(), search.Request{
		Kind:   search.KindIndex,
		Name:   "docs-index",
		URL:    srv.URL,
		APIKey: "admin-key",
		Body:   []byte(`{"name":"docs-index"}`),
	})

	assert.True(t, outcome.Succeeded)
	assert.Equal(t, http.StatusCreated, outcome.StatusCode)
	assert.Empty(t, outcome.ErrorDetail)
	assert.Empty(t, outcome.ArtifactPath)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "admin-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
}

func TestUpsert_APIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"forbidden"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t)
	outcome := client.Upsert(context.Background(), search.Request{
		Kind: search.KindDataSource,
		Name: "docs-datasource",
		URL:  srv.URL,
		Body: []byte(`{}`),
	})

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, http.StatusForbidden, outcome.StatusCode)
	assert.Contains(t, outcome.ErrorDetail, "forbidden")

	// The raw detail must survive in the artifact file
	require.NotEmpty(t, outcome.ArtifactPath)
	content, err := os.ReadFile(outcome.ArtifactPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "forbidden")
	assert.Contains(t, string(content), "status: 403")
}

func TestUpsert_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Unreachable endpoint

	client, _ := newTestClient(t)
	outcome := client.Upsert(context.Background(), search.Request{
		Kind: search.KindIndexer,
		Name: "docs-indexer",
		URL:  srv.URL,
		Body: []byte(`{}`),
	})

	assert.False(t, outcome.Succeeded)
	assert.Zero(t, outcome.StatusCode)
	assert.Contains(t, outcome.ErrorDetail, "transport failure")
	assert.NotEmpty(t, outcome.ArtifactPath)
}
