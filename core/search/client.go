package search

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Request describes a single upsert against the management API.
type Request struct {
	// Kind identifies the resource type for reporting and artifacts.
	Kind ResourceKind
	// Name is the remote resource name.
	Name string
	// URL is the full upsert URL including api-version.
	URL string
	// APIKey is the admin key sent in the api-key header.
	APIKey string
	// Body is the canonical JSON document.
	Body []byte
}

// Outcome is the classified result of one upsert.
type Outcome struct {
	// Kind identifies the resource type.
	Kind ResourceKind `json:"kind"`
	// Name is the remote resource name.
	Name string `json:"name"`
	// Succeeded is true for any 2xx response (or a simulated dry-run stage).
	Succeeded bool `json:"succeeded"`
	// StatusCode is the HTTP status, zero when the service was unreachable
	// or the stage was simulated.
	StatusCode int `json:"status_code,omitempty"`
	// ErrorDetail is the response body or transport error text on failure.
	ErrorDetail string `json:"error_detail,omitempty"`
	// ArtifactPath locates the persisted failure detail, if any.
	ArtifactPath string `json:"artifact_path,omitempty"`
	// Simulated is true when the outcome was produced by a dry run.
	Simulated bool `json:"simulated,omitempty"`
}

// Client defines the interface for upserting resources on the management API.
type Client interface {
	// Upsert issues an idempotent PUT: the first call creates the resource,
	// later calls fully replace it. This is a blind overwrite, not a merge;
	// callers must send the complete desired document every time.
	//
	// Any status outside [200,300), including an unreachable service, is a
	// failure. No retries are performed. Failure detail is persisted to the
	// sink before the Outcome is returned.
	Upsert(ctx context.Context, req Request) Outcome
}

// NewClient creates an HTTP-backed Client using the configured timeouts.
func NewClient(cfg Config, sink FailureSink, log *zap.Logger) Client {
	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration, // TLS Handshake timeout
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration, // Wait for first response byte timeout
	}

	return &httpClient{
		http: &http.Client{Transport: transport},
		sink: sink,
		log:  log,
	}
}

type httpClient struct {
	http *http.Client
	sink FailureSink
	log  *zap.Logger
}

func (c *httpClient) Upsert(ctx context.Context, req Request) Outcome {
	outcome := Outcome{Kind: req.Kind, Name: req.Name}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return c.fail(outcome, req, 0, fmt.Sprintf("failed to build request: %v", err))
	}
	httpReq.Header.Set("api-key", req.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		terr := &TransportError{Err: err}
		return c.fail(outcome, req, 0, terr.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(outcome, req, resp.StatusCode, fmt.Sprintf("failed to read response body: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		aerr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		return c.fail(outcome, req, resp.StatusCode, aerr.Error())
	}

	outcome.Succeeded = true
	outcome.StatusCode = resp.StatusCode
	c.log.Info("Upsert succeeded",
		zap.String("resource_kind", string(req.Kind)),
		zap.String("resource_name", req.Name),
		zap.Int("status", resp.StatusCode),
	)
	return outcome
}

// fail persists the failure detail through the sink, logs it, and returns the
// failed outcome. Sink errors are logged but never mask the upsert failure.
func (c *httpClient) fail(outcome Outcome, req Request, status int, detail string) Outcome {
	outcome.Succeeded = false
	outcome.StatusCode = status
	outcome.ErrorDetail = detail

	artifact := fmt.Sprintf("PUT %s\nstatus: %d\n\n%s\n", req.URL, status, detail)
	path, err := c.sink.Record(req.Kind, req.Name, []byte(artifact))
	if err != nil {
		c.log.Warn("Failed to persist failure artifact", zap.Error(err))
	} else {
		outcome.ArtifactPath = path
	}

	c.log.Error("Upsert failed",
		zap.String("resource_kind", string(req.Kind)),
		zap.String("resource_name", req.Name),
		zap.Int("status", status),
		zap.String("artifact", outcome.ArtifactPath),
	)
	return outcome
}
