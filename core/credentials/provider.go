package credentials

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Provider resolves the administrative key for a search service instance.
// A failure here is fatal to every downstream upsert; there is no cached
// fallback.
type Provider interface {
	// GetAdminKey returns the admin key for the named service.
	GetAdminKey(ctx context.Context, resourceGroup, serviceName string) (string, error)
}

// CredentialError indicates the administrative key could not be resolved.
type CredentialError struct {
	// Service is the search service whose key was requested.
	Service string
	// Reason describes what went wrong.
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *CredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to resolve admin key for %q: %s: %v", e.Service, e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to resolve admin key for %q: %s", e.Service, e.Reason)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// New selects a Provider from the configuration: a static provider when an
// admin key is supplied directly, otherwise the management-plane provider.
func New(cfg Config, log *zap.Logger) (Provider, error) {
	if cfg.AdminKey != "" {
		return NewStatic(cfg.AdminKey), nil
	}
	if cfg.SubscriptionID != "" && cfg.AccessToken != "" {
		return NewManagement(cfg, log), nil
	}
	return nil, fmt.Errorf("no credential source configured: set azure.admin_key, or azure.subscription_id and azure.access_token")
}
