package credentials

// Config holds configuration for administrative key retrieval.
type Config struct {
	// AdminKey is a directly supplied admin key. When set, the management
	// plane is never contacted.
	AdminKey string `mapstructure:"admin_key" default:""`
	// SubscriptionID is the subscription containing the search service.
	SubscriptionID string `mapstructure:"subscription_id" default:""`
	// AccessToken is a bearer token for the management plane. Acquiring the
	// token (CLI login, workload identity) is the caller's concern.
	AccessToken string `mapstructure:"access_token" default:""`
	// ManagementEndpoint is the base URL of the management plane.
	ManagementEndpoint string `mapstructure:"management_endpoint" default:"https://management.azure.com"`
	// APIVersion is the management api-version for key listing.
	APIVersion string `mapstructure:"api_version" default:"2023-11-01"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
