package provision

// The types in this file mirror the management API's JSON wire format
// exactly. They are full desired-state documents: every upsert submits the
// complete document and the service replaces whatever exists.

// DataSourceDocument is the desired state of a blob data source.
type DataSourceDocument struct {
	Name        string                `json:"name"`
	Type        string                `json:"type"`
	Credentials DataSourceCredentials `json:"credentials"`
	Container   DataSourceContainer   `json:"container"`
	// Identity is only set in managed-identity mode.
	Identity *ResourceIdentity `json:"identity,omitempty"`
}

// DataSourceCredentials carries either an inline connection string or a
// ResourceId= reference resolved through the attached identity.
type DataSourceCredentials struct {
	ConnectionString string `json:"connectionString"`
}

// DataSourceContainer names the blob container to ingest from.
type DataSourceContainer struct {
	Name string `json:"name"`
}

// ResourceIdentity is the identity descriptor attached in managed-identity
// mode instead of an inline secret.
type ResourceIdentity struct {
	ODataType            string `json:"@odata.type"`
	UserAssignedIdentity string `json:"userAssignedIdentity"`
}

// IndexDocument is the desired state of a search index.
type IndexDocument struct {
	Name         string            `json:"name"`
	Fields       []Field           `json:"fields"`
	Similarity   *Similarity       `json:"similarity"`
	Semantic     *SemanticSettings `json:"semantic"`
	VectorSearch *VectorSearch     `json:"vectorSearch"`
}

// Field is one entry of the index schema.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Key         bool   `json:"key"`
	Searchable  bool   `json:"searchable"`
	Filterable  bool   `json:"filterable"`
	Retrievable bool   `json:"retrievable"`
	Stored      bool   `json:"stored"`
	Sortable    bool   `json:"sortable"`
	Facetable   bool   `json:"facetable"`
	Analyzer    string `json:"analyzer,omitempty"`
}

// Similarity selects the ranking algorithm for text scoring.
type Similarity struct {
	ODataType string `json:"@odata.type"`
}

// SemanticSettings holds the semantic ranking configurations.
type SemanticSettings struct {
	Configurations []SemanticConfiguration `json:"configurations"`
}

// SemanticConfiguration assigns field priorities for semantic ranking.
type SemanticConfiguration struct {
	Name              string                    `json:"name"`
	PrioritizedFields SemanticPrioritizedFields `json:"prioritizedFields"`
}

// SemanticPrioritizedFields ranks fields by their semantic role.
type SemanticPrioritizedFields struct {
	TitleField                SemanticField   `json:"titleField"`
	PrioritizedContentFields  []SemanticField `json:"prioritizedContentFields"`
	PrioritizedKeywordsFields []SemanticField `json:"prioritizedKeywordsFields"`
}

// SemanticField references an index field by name.
type SemanticField struct {
	FieldName string `json:"fieldName"`
}

// VectorSearch holds the vector search configuration: exactly one algorithm,
// one profile linking it to a vectorizer, and one vectorizer.
type VectorSearch struct {
	Algorithms  []VectorAlgorithm `json:"algorithms"`
	Profiles    []VectorProfile   `json:"profiles"`
	Vectorizers []Vectorizer      `json:"vectorizers"`
}

// VectorAlgorithm is an approximate-nearest-neighbor algorithm entry.
type VectorAlgorithm struct {
	Name           string         `json:"name"`
	Kind           string         `json:"kind"`
	HNSWParameters HNSWParameters `json:"hnswParameters"`
}

// HNSWParameters are the HNSW graph tuning constants.
type HNSWParameters struct {
	Metric         string `json:"metric"`
	M              int    `json:"m"`
	EfConstruction int    `json:"efConstruction"`
	EfSearch       int    `json:"efSearch"`
}

// VectorProfile links an algorithm and a vectorizer by name.
type VectorProfile struct {
	Name       string `json:"name"`
	Algorithm  string `json:"algorithm"`
	Vectorizer string `json:"vectorizer"`
}

// Vectorizer describes a remote embedding endpoint.
type Vectorizer struct {
	Name                  string                 `json:"name"`
	Kind                  string                 `json:"kind"`
	AzureOpenAIParameters *AzureOpenAIParameters `json:"azureOpenAIParameters,omitempty"`
}

// AzureOpenAIParameters identify the embedding deployment and model.
type AzureOpenAIParameters struct {
	ResourceURI  string `json:"resourceUri"`
	DeploymentID string `json:"deploymentId"`
	ModelName    string `json:"modelName"`
}

// IndexerDocument is the desired state of an indexer. Schedule, skillset, and
// field mappings are deliberately absent: content is ingested raw, with no
// transformation.
type IndexerDocument struct {
	Name            string            `json:"name"`
	DataSourceName  string            `json:"dataSourceName"`
	TargetIndexName string            `json:"targetIndexName"`
	Parameters      IndexerParameters `json:"parameters"`
}

// IndexerParameters wraps the execution configuration.
type IndexerParameters struct {
	Configuration IndexerConfiguration `json:"configuration"`
}

// IndexerConfiguration fixes the extraction and parsing modes.
type IndexerConfiguration struct {
	DataToExtract string `json:"dataToExtract"`
	ParsingMode   string `json:"parsingMode"`
}
