package cmd

import (
	"context"
	"fmt"

	"search-provisioner/core/config"
	"search-provisioner/core/credentials"
	"search-provisioner/core/logger"
	"search-provisioner/core/search"
	"search-provisioner/feature/provision"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the provision command
	resourceGroup    string
	serviceName      string
	openAIService    string
	connectionString string
	identityID       string
	containerName    string
	dataSourceName   string
	indexName        string
	indexerName      string
	semanticConfig   string
	analyzerName     string
	algorithmName    string
	profileName      string
	vectorizerName   string
	deploymentID     string
	modelName        string
	dryRun           bool
)

// provisionCmd provisions the data source, index, and indexer in order.
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Provision the data source, index, and indexer",
	Long: `Provision the three-resource search pipeline in dependency order:
data source, then index, then indexer.

Each resource is upserted with full-replace semantics: the first run creates
it, later runs overwrite it. A failed stage halts the pipeline and leaves
earlier stages in place; re-running is always safe.

Examples:
  # Provision with a storage connection string
  provision --resource-group rg --service svc --openai-service emb \
    --connection-string "DefaultEndpointsProtocol=..." --container docs

  # Provision with a user-assigned managed identity
  provision --resource-group rg --service svc --openai-service emb \
    --identity /subscriptions/.../userAssignedIdentities/mi --container docs

  # Inspect the computed documents without touching the service
  provision --resource-group rg --service svc --openai-service emb \
    --connection-string "..." --container docs --dry-run`,
	RunE: runProvision,
}

func init() {
	f := provisionCmd.Flags()

	f.StringVar(&resourceGroup, "resource-group", "", "Resource group of the search service (required)")
	f.StringVar(&serviceName, "service", "", "Search service name (required)")
	f.StringVar(&openAIService, "openai-service", "", "Embedding service name (required)")
	f.StringVar(&connectionString, "connection-string", "", "Storage connection string (mutually exclusive with --identity)")
	f.StringVar(&identityID, "identity", "", "User-assigned managed identity resource id (mutually exclusive with --connection-string)")
	f.StringVar(&containerName, "container", "", "Blob container to ingest from (required)")
	f.StringVar(&dataSourceName, "datasource-name", "docs-datasource", "Data source name")
	f.StringVar(&indexName, "index-name", "docs-index", "Index name")
	f.StringVar(&indexerName, "indexer-name", "docs-indexer", "Indexer name")
	f.StringVar(&semanticConfig, "semantic-config", "docs-semantic", "Semantic configuration name")
	f.StringVar(&analyzerName, "analyzer", "standard.lucene", "Analyzer for the url and content fields")
	f.StringVar(&algorithmName, "algorithm-name", "hnsw-algorithm", "Vector search algorithm name")
	f.StringVar(&profileName, "profile-name", "vector-profile", "Vector search profile name")
	f.StringVar(&vectorizerName, "vectorizer-name", "openai-vectorizer", "Vectorizer name")
	f.StringVar(&deploymentID, "deployment", "text-embedding-3-large", "Embedding model deployment id")
	f.StringVar(&modelName, "model", "text-embedding-3-large", "Embedding model name")
	f.BoolVar(&dryRun, "dry-run", false, "Report computed documents and URLs without contacting the service")

	_ = provisionCmd.MarkFlagRequired("resource-group")
	_ = provisionCmd.MarkFlagRequired("service")
	_ = provisionCmd.MarkFlagRequired("openai-service")
	_ = provisionCmd.MarkFlagRequired("container")

	RootCmd.AddCommand(provisionCmd)
}

func runProvision(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	l.Info("Starting search pipeline provisioning",
		zap.String("service", serviceName),
		zap.Bool("dry_run", dryRun),
	)

	// Resolve the credential source. A dry run never contacts the service,
	// so no credential configuration is needed for it.
	var creds credentials.Provider
	if !dryRun {
		creds, err = credentials.New(cfg.Azure, l)
		if err != nil {
			return fmt.Errorf("failed to configure credentials: %w", err)
		}
	}

	// Build API client with the file-based failure sink
	sink := search.NewFileSink(cfg.Search.ArtifactDir)
	client := search.NewClient(cfg.Search, sink, l)

	// Build pipeline parameters
	params := provision.PipelineParams{
		ResourceGroup: resourceGroup,
		Service:       serviceName,
		DataSource: provision.DataSourceParams{
			Name:               dataSourceName,
			StorageType:        provision.StorageTypeAzureBlob,
			ConnectionString:   connectionString,
			IdentityResourceID: identityID,
			Container:          containerName,
		},
		Index: provision.IndexParams{
			Name:               indexName,
			Analyzer:           analyzerName,
			SemanticConfigName: semanticConfig,
			AlgorithmName:      algorithmName,
			ProfileName:        profileName,
			VectorizerName:     vectorizerName,
			VectorizerKind:     provision.VectorizerKindAzureOpenAI,
			OpenAIResourceURI:  fmt.Sprintf("https://%s.openai.azure.com", openAIService),
			DeploymentID:       deploymentID,
			ModelName:          modelName,
		},
		Indexer: provision.IndexerParams{
			Name:           indexerName,
			DataSourceName: dataSourceName,
			IndexName:      indexName,
		},
	}

	// Run the pipeline
	rec := provision.NewReconciler(client, creds, cfg.Search, l)
	summary, err := rec.Run(ctx, params, provision.Options{DryRun: dryRun})
	if err != nil {
		return err
	}

	// Print per-resource report
	printProvisionReport(l, summary)

	if !summary.Succeeded() {
		return fmt.Errorf("provisioning halted at state %q", summary.State)
	}

	l.Info("Provisioning complete", zap.String("state", string(summary.State)))
	return nil
}

// printProvisionReport prints a formatted per-resource report using logger.
func printProvisionReport(l *zap.Logger, summary *provision.Summary) {
	for _, o := range summary.Outcomes {
		fields := []zap.Field{
			zap.String("resource_kind", string(o.Kind)),
			zap.String("resource_name", o.Name),
			zap.Bool("succeeded", o.Succeeded),
			zap.Bool("simulated", o.Simulated),
		}
		if o.StatusCode != 0 {
			fields = append(fields, zap.Int("status", o.StatusCode))
		}

		if o.Succeeded {
			l.Info("Resource outcome", fields...)
		} else {
			fields = append(fields,
				zap.String("error", o.ErrorDetail),
				zap.String("artifact", o.ArtifactPath),
			)
			l.Error("Resource outcome", fields...)
		}
	}
}
