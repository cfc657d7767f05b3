package search

import "fmt"

// ResourceKind identifies one of the three provisioned resource types.
type ResourceKind string

const (
	// KindDataSource is the blob data source resource.
	KindDataSource ResourceKind = "datasource"
	// KindIndex is the search index resource.
	KindIndex ResourceKind = "index"
	// KindIndexer is the indexer resource.
	KindIndexer ResourceKind = "indexer"
)

// DataSourceURL returns the upsert URL for a data source.
// Data sources use the parenthesized-key form and the preview api-version.
func DataSourceURL(service, name, apiVersion string) string {
	return fmt.Sprintf("https://%s.search.windows.net/datasources('%s')?api-version=%s", service, name, apiVersion)
}

// IndexURL returns the upsert URL for an index (parenthesized-key form).
func IndexURL(service, name, apiVersion string) string {
	return fmt.Sprintf("https://%s.search.windows.net/indexes('%s')?api-version=%s", service, name, apiVersion)
}

// IndexerURL returns the upsert URL for an indexer.
// Indexers use the path-segment form rather than the parenthesized key.
func IndexerURL(service, name, apiVersion string) string {
	return fmt.Sprintf("https://%s.search.windows.net/indexers/%s?api-version=%s", service, name, apiVersion)
}
