package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Management resolves admin keys through the cloud provider's management
// plane (the listAdminKeys operation). It requires a pre-acquired bearer
// token; token acquisition is outside this package.
type Management struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

// NewManagement creates a management-plane Provider.
func NewManagement(cfg Config, log *zap.Logger) *Management {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Management{
		cfg:  cfg,
		http: &http.Client{Transport: transport},
		log:  log,
	}
}

// adminKeys mirrors the management plane's listAdminKeys response.
type adminKeys struct {
	PrimaryKey   string `json:"primaryKey"`
	SecondaryKey string `json:"secondaryKey"`
}

func (m *Management) GetAdminKey(ctx context.Context, resourceGroup, serviceName string) (string, error) {
	url := fmt.Sprintf(
		"%s/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Search/searchServices/%s/listAdminKeys?api-version=%s",
		m.cfg.ManagementEndpoint, m.cfg.SubscriptionID, resourceGroup, serviceName, m.cfg.APIVersion,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", &CredentialError{Service: serviceName, Reason: "failed to build request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return "", &CredentialError{Service: serviceName, Reason: "management plane unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &CredentialError{Service: serviceName, Reason: "failed to read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &CredentialError{
			Service: serviceName,
			Reason:  fmt.Sprintf("listAdminKeys returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var keys adminKeys
	if err := json.Unmarshal(body, &keys); err != nil {
		return "", &CredentialError{Service: serviceName, Reason: "failed to decode key listing", Err: err}
	}
	if keys.PrimaryKey == "" {
		return "", &CredentialError{Service: serviceName, Reason: "key listing contained no primary key"}
	}

	m.log.Debug("Resolved admin key from management plane", zap.String("service", serviceName))
	return keys.PrimaryKey, nil
}
