package credentials

import "context"

// Static is a Provider that always returns a fixed admin key.
type Static struct {
	key string
}

// NewStatic creates a Static provider for a directly configured key.
func NewStatic(key string) *Static {
	return &Static{key: key}
}

func (s *Static) GetAdminKey(ctx context.Context, resourceGroup, serviceName string) (string, error) {
	if s.key == "" {
		return "", &CredentialError{Service: serviceName, Reason: "static admin key is empty"}
	}
	return s.key, nil
}
