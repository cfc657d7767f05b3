package search

// Config holds configuration for the search management API client.
type Config struct {
	// StableAPIVersion is the api-version used for index and indexer calls.
	StableAPIVersion string `mapstructure:"stable_api_version" default:"2024-07-01"`
	// PreviewAPIVersion is the api-version used for data source calls.
	PreviewAPIVersion string `mapstructure:"preview_api_version" default:"2024-05-01-preview"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ArtifactDir is the directory where failure artifacts are written.
	ArtifactDir string `mapstructure:"artifact_dir" default:"artifacts"`
}
