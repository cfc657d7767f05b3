package provision_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"search-provisioner/core/credentials"
	"search-provisioner/core/search"
	"search-provisioner/feature/provision"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// End-to-end over a real HTTP client: three PUT calls in order, each 2xx,
// three succeeded outcomes. URLs are rewritten onto the test server since the
// production URL builders pin the real service host.
func TestPipeline_EndToEnd(t *testing.T) {
	type call struct {
		method string
		path   string
		body   map[string]any
	}
	var calls []call

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		calls = append(calls, call{method: r.Method, path: r.URL.Path, body: body})
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	dir := t.TempDir()
	client := rewritingClient{
		inner:  search.NewClient(search.Config{TimeoutSeconds: 5}, search.NewFileSink(dir), zap.NewNop()),
		target: srv.URL,
	}

	rec := provision.NewReconciler(client, credentials.NewStatic("admin-key"), search.Config{
		StableAPIVersion:  "2024-07-01",
		PreviewAPIVersion: "2024-05-01-preview",
	}, zap.NewNop())

	summary, err := rec.Run(context.Background(), pipelineParams(), provision.Options{})
	require.NoError(t, err)

	assert.True(t, summary.Succeeded())
	require.Len(t, summary.Outcomes, 3)
	for _, o := range summary.Outcomes {
		assert.True(t, o.Succeeded)
		assert.Equal(t, http.StatusCreated, o.StatusCode)
		assert.False(t, o.Simulated)
	}

	require.Len(t, calls, 3)
	assert.Equal(t, "/datasources('docs-datasource')", calls[0].path)
	assert.Equal(t, "/indexes('docs-index')", calls[1].path)
	assert.Equal(t, "/indexers/docs-indexer", calls[2].path)
	for _, c := range calls {
		assert.Equal(t, http.MethodPut, c.method)
	}

	// The submitted documents carry the foreign references the order exists for
	assert.Equal(t, "docs-datasource", calls[2].body["dataSourceName"])
	assert.Equal(t, "docs-index", calls[2].body["targetIndexName"])
}

// rewritingClient redirects the production host to the test server.
type rewritingClient struct {
	inner  search.Client
	target string
}

func (c rewritingClient) Upsert(ctx context.Context, req search.Request) search.Outcome {
	u, err := url.Parse(req.URL)
	if err != nil {
		panic(err)
	}
	req.URL = c.target + u.Path + "?" + u.RawQuery
	return c.inner.Upsert(ctx, req)
}
