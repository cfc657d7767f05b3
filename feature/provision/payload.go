package provision

// Fixed structural constants of the generated documents.
const (
	// StorageTypeAzureBlob is the only supported data source backend.
	StorageTypeAzureBlob = "azureblob"
	// VectorizerKindAzureOpenAI is the only supported embedding backend.
	VectorizerKindAzureOpenAI = "azureOpenAI"

	similarityBM25       = "#Microsoft.Azure.Search.BM25Similarity"
	identityUserAssigned = "#Microsoft.Azure.Search.DataUserAssignedIdentity"
	vectorKindHNSW       = "hnsw"

	hnswMetric         = "cosine"
	hnswM              = 6
	hnswEfConstruction = 400
	hnswEfSearch       = 500

	dataToExtractContentAndMetadata = "contentAndMetadata"
	parsingModeJSON                 = "json"

	fieldTypeString         = "Edm.String"
	fieldTypeDateTimeOffset = "Edm.DateTimeOffset"
)

// BuildDataSource produces the data source document. Exactly one credential
// mode must be selected; supplying both a connection string and a managed
// identity is rejected rather than resolved by precedence.
func BuildDataSource(p DataSourceParams) (*DataSourceDocument, error) {
	if p.StorageType != StorageTypeAzureBlob {
		return nil, configErr("storage_type", "unsupported storage type %q, only %q is supported", p.StorageType, StorageTypeAzureBlob)
	}

	hasConnString := p.ConnectionString != ""
	hasIdentity := p.IdentityResourceID != ""

	switch {
	case hasConnString && hasIdentity:
		return nil, configErr("credentials", "connection string and managed identity are mutually exclusive")
	case !hasConnString && !hasIdentity:
		return nil, configErr("credentials", "either a connection string or a managed identity resource id is required")
	}

	doc := &DataSourceDocument{
		Name:      p.Name,
		Type:      p.StorageType,
		Container: DataSourceContainer{Name: p.Container},
	}

	if hasConnString {
		doc.Credentials = DataSourceCredentials{ConnectionString: p.ConnectionString}
	} else {
		// Managed identity: the credential references the storage account by
		// resource id and the identity descriptor replaces the inline secret.
		doc.Credentials = DataSourceCredentials{ConnectionString: "ResourceId=" + p.IdentityResourceID}
		doc.Identity = &ResourceIdentity{
			ODataType:            identityUserAssigned,
			UserAssignedIdentity: p.IdentityResourceID,
		}
	}

	return doc, nil
}

// BuildIndex produces the index document: the fixed four-field schema, BM25
// similarity, one semantic configuration, and one vector search block with a
// single HNSW algorithm, profile, and vectorizer.
func BuildIndex(p IndexParams) (*IndexDocument, error) {
	if p.VectorizerKind != VectorizerKindAzureOpenAI {
		return nil, configErr("vectorizer_kind", "unsupported vectorizer kind %q, only %q is supported", p.VectorizerKind, VectorizerKindAzureOpenAI)
	}

	return &IndexDocument{
		Name: p.Name,
		Fields: []Field{
			{
				Name:        "id",
				Type:        fieldTypeString,
				Key:         true,
				Searchable:  true,
				Filterable:  true,
				Retrievable: true,
				Stored:      true,
				Sortable:    true,
			},
			{
				Name:        "url",
				Type:        fieldTypeString,
				Searchable:  true,
				Filterable:  true,
				Retrievable: true,
				Stored:      true,
				Sortable:    true,
				Analyzer:    p.Analyzer,
			},
			{
				Name:        "content",
				Type:        fieldTypeString,
				Searchable:  true,
				Retrievable: true,
				Stored:      true,
				Analyzer:    p.Analyzer,
			},
			{
				Name:        "timestamp",
				Type:        fieldTypeDateTimeOffset,
				Filterable:  true,
				Retrievable: true,
				Stored:      true,
				Sortable:    true,
			},
		},
		Similarity: &Similarity{ODataType: similarityBM25},
		Semantic: &SemanticSettings{
			Configurations: []SemanticConfiguration{
				{
					Name: p.SemanticConfigName,
					PrioritizedFields: SemanticPrioritizedFields{
						TitleField:                SemanticField{FieldName: "url"},
						PrioritizedContentFields:  []SemanticField{{FieldName: "content"}},
						PrioritizedKeywordsFields: []SemanticField{{FieldName: "url"}},
					},
				},
			},
		},
		VectorSearch: &VectorSearch{
			Algorithms: []VectorAlgorithm{
				{
					Name: p.AlgorithmName,
					Kind: vectorKindHNSW,
					HNSWParameters: HNSWParameters{
						Metric:         hnswMetric,
						M:              hnswM,
						EfConstruction: hnswEfConstruction,
						EfSearch:       hnswEfSearch,
					},
				},
			},
			Profiles: []VectorProfile{
				{
					Name:       p.ProfileName,
					Algorithm:  p.AlgorithmName,
					Vectorizer: p.VectorizerName,
				},
			},
			Vectorizers: []Vectorizer{
				{
					Name: p.VectorizerName,
					Kind: p.VectorizerKind,
					AzureOpenAIParameters: &AzureOpenAIParameters{
						ResourceURI:  p.OpenAIResourceURI,
						DeploymentID: p.DeploymentID,
						ModelName:    p.ModelName,
					},
				},
			},
		},
	}, nil
}

// BuildIndexer produces the indexer document linking the data source and
// index by name, with fixed extraction and parsing modes and no
// transformation pipeline.
func BuildIndexer(p IndexerParams) (*IndexerDocument, error) {
	if p.DataSourceName == "" {
		return nil, configErr("data_source_name", "indexer requires a data source name")
	}
	if p.IndexName == "" {
		return nil, configErr("index_name", "indexer requires a target index name")
	}

	return &IndexerDocument{
		Name:            p.Name,
		DataSourceName:  p.DataSourceName,
		TargetIndexName: p.IndexName,
		Parameters: IndexerParameters{
			Configuration: IndexerConfiguration{
				DataToExtract: dataToExtractContentAndMetadata,
				ParsingMode:   parsingModeJSON,
			},
		},
	}, nil
}
