package provision

import "search-provisioner/core/search"

// DataSourceParams configure the blob data source document.
type DataSourceParams struct {
	// Name is the remote data source name.
	Name string

	// StorageType selects the storage backend. Only "azureblob" is supported.
	StorageType string

	// ConnectionString is the inline storage credential.
	// Mutually exclusive with IdentityResourceID.
	ConnectionString string

	// IdentityResourceID is the user-assigned managed identity resource id.
	// Mutually exclusive with ConnectionString.
	IdentityResourceID string

	// Container is the blob container to ingest from.
	Container string
}

// IndexParams configure the search index document.
type IndexParams struct {
	// Name is the remote index name.
	Name string

	// Analyzer is applied to the url and content text fields.
	Analyzer string

	// SemanticConfigName names the semantic ranking configuration.
	SemanticConfigName string

	// AlgorithmName names the HNSW algorithm entry.
	AlgorithmName string

	// ProfileName names the vector profile linking algorithm and vectorizer.
	ProfileName string

	// VectorizerName names the vectorizer entry.
	VectorizerName string

	// VectorizerKind selects the embedding backend. Only "azureOpenAI" is
	// supported.
	VectorizerKind string

	// OpenAIResourceURI is the embedding service endpoint.
	OpenAIResourceURI string

	// DeploymentID is the embedding model deployment.
	DeploymentID string

	// ModelName is the embedding model name.
	ModelName string
}

// IndexerParams configure the indexer document.
type IndexerParams struct {
	// Name is the remote indexer name.
	Name string

	// DataSourceName references the data source by name. The service rejects
	// the indexer if it does not already exist.
	DataSourceName string

	// IndexName references the target index by name.
	IndexName string
}

// PipelineParams bundle everything one provisioning run needs.
type PipelineParams struct {
	// ResourceGroup is the resource group of the search service.
	ResourceGroup string

	// Service is the search service name (the {service}.search.windows.net
	// host prefix).
	Service string

	DataSource DataSourceParams
	Index      IndexParams
	Indexer    IndexerParams
}

// Options control provisioning behavior.
type Options struct {
	// DryRun computes and reports every document and URL without issuing any
	// network call. All stages report simulated success.
	DryRun bool
}

// State tracks pipeline progress through the three stages.
type State string

const (
	// StateIdle is the initial state before any upsert.
	StateIdle State = "idle"
	// StateDataSourceUpserted means the data source stage succeeded.
	StateDataSourceUpserted State = "datasource_upserted"
	// StateIndexUpserted means the index stage succeeded.
	StateIndexUpserted State = "index_upserted"
	// StateIndexerUpserted is the terminal success state.
	StateIndexerUpserted State = "indexer_upserted"
	// StateFailedDataSource is terminal failure at the data source stage.
	StateFailedDataSource State = "failed_datasource"
	// StateFailedIndex is terminal failure at the index stage.
	StateFailedIndex State = "failed_index"
	// StateFailedIndexer is terminal failure at the indexer stage.
	StateFailedIndexer State = "failed_indexer"
)

// Summary aggregates the per-resource outcomes of one run.
type Summary struct {
	// State is the terminal pipeline state.
	State State `json:"state"`

	// Outcomes lists per-resource results in execution order. A run halted
	// by a failure carries fewer than three entries plus the failed one.
	Outcomes []search.Outcome `json:"outcomes"`
}

// Succeeded reports whether all three stages completed.
func (s *Summary) Succeeded() bool {
	return s.State == StateIndexerUpserted
}
