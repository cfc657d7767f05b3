package search_test

import (
	"testing"

	"search-provisioner/core/search"

	"github.com/stretchr/testify/assert"
)

func TestResourceURLs(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			"DataSource",
			search.DataSourceURL("my-svc", "docs-datasource", "2024-05-01-preview"),
			"https://my-svc.search.windows.net/datasources('docs-datasource')?api-version=2024-05-01-preview",
		},
		{
			"Index",
			search.IndexURL("my-svc", "docs-index", "2024-07-01"),
			"https://my-svc.search.windows.net/indexes('docs-index')?api-version=2024-07-01",
		},
		{
			// Indexers use the path-segment form, not the parenthesized key
			"Indexer",
			search.IndexerURL("my-svc", "docs-indexer", "2024-07-01"),
			"https://my-svc.search.windows.net/indexers/docs-indexer?api-version=2024-07-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
