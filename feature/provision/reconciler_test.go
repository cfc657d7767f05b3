package provision_test

import (
	"context"
	"testing"

	"search-provisioner/core/credentials"
	credmocks "search-provisioner/core/credentials/mocks"
	"search-provisioner/core/search"
	"search-provisioner/core/search/mocks"
	"search-provisioner/feature/provision"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pipelineParams() provision.PipelineParams {
	return provision.PipelineParams{
		ResourceGroup: "my-rg",
		Service:       "my-svc",
		DataSource:    validDataSourceParams(),
		Index:         validIndexParams(),
		Indexer:       validIndexerParams(),
	}
}

func testSearchConfig() search.Config {
	return search.Config{
		StableAPIVersion:  "2024-07-01",
		PreviewAPIVersion: "2024-05-01-preview",
	}
}

func matchKind(kind search.ResourceKind) any {
	return mock.MatchedBy(func(r search.Request) bool { return r.Kind == kind })
}

func TestRun_ProvisionsAllThreeInOrder(t *testing.T) {
	client := new(mocks.Client)
	creds := new(credmocks.Provider)

	creds.On("GetAdminKey", mock.Anything, "my-rg", "my-svc").Return("admin-key", nil).Times(3)

	var order []search.ResourceKind
	var requests []search.Request
	record := func(args mock.Arguments) {
		req := args.Get(1).(search.Request)
		order = append(order, req.Kind)
		requests = append(requests, req)
	}

	client.On("Upsert", mock.Anything, matchKind(search.KindDataSource)).
		Return(search.Outcome{Kind: search.KindDataSource, Name: "docs-datasource", Succeeded: true, StatusCode: 201}).
		Run(record)
	client.On("Upsert", mock.Anything, matchKind(search.KindIndex)).
		Return(search.Outcome{Kind: search.KindIndex, Name: "docs-index", Succeeded: true, StatusCode: 201}).
		Run(record)
	client.On("Upsert", mock.Anything, matchKind(search.KindIndexer)).
		Return(search.Outcome{Kind: search.KindIndexer, Name: "docs-indexer", Succeeded: true, StatusCode: 201}).
		Run(record)

	rec := provision.NewReconciler(client, creds, testSearchConfig(), zap.NewNop())
	summary, err := rec.Run(context.Background(), pipelineParams(), provision.Options{})
	require.NoError(t, err)

	assert.True(t, summary.Succeeded())
	assert.Equal(t, provision.StateIndexerUpserted, summary.State)
	assert.Len(t, summary.Outcomes, 3)

	// Dependency order: data source, then index, then indexer
	assert.Equal(t, []search.ResourceKind{search.KindDataSource, search.KindIndex, search.KindIndexer}, order)

	// Data source uses the preview api-version, the rest the stable one
	require.Len(t, requests, 3)
	assert.Equal(t, "https://my-svc.search.windows.net/datasources('docs-datasource')?api-version=2024-05-01-preview", requests[0].URL)
	assert.Equal(t, "https://my-svc.search.windows.net/indexes('docs-index')?api-version=2024-07-01", requests[1].URL)
	assert.Equal(t, "https://my-svc.search.windows.net/indexers/docs-indexer?api-version=2024-07-01", requests[2].URL)

	for _, req := range requests {
		assert.Equal(t, "admin-key", req.APIKey)
		assert.NotEmpty(t, req.Body)
	}

	client.AssertExpectations(t)
	creds.AssertExpectations(t)
}

func TestRun_DryRunIssuesNoCalls(t *testing.T) {
	client := new(mocks.Client)

	// No credential provider at all: a dry run must never need one.
	rec := provision.NewReconciler(client, nil, testSearchConfig(), zap.NewNop())
	summary, err := rec.Run(context.Background(), pipelineParams(), provision.Options{DryRun: true})
	require.NoError(t, err)

	assert.True(t, summary.Succeeded())
	assert.Len(t, summary.Outcomes, 3)
	for _, o := range summary.Outcomes {
		assert.True(t, o.Succeeded)
		assert.True(t, o.Simulated)
		assert.Zero(t, o.StatusCode)
	}

	assert.Empty(t, client.Calls)
}

func TestRun_FailureHaltsPipeline(t *testing.T) {
	client := new(mocks.Client)
	creds := new(credmocks.Provider)

	creds.On("GetAdminKey", mock.Anything, "my-rg", "my-svc").Return("admin-key", nil).Once()

	// A 403 on the data source must prevent any index or indexer call
	client.On("Upsert", mock.Anything, matchKind(search.KindDataSource)).
		Return(search.Outcome{
			Kind:        search.KindDataSource,
			Name:        "docs-datasource",
			Succeeded:   false,
			StatusCode:  403,
			ErrorDetail: "forbidden",
		}).Once()

	rec := provision.NewReconciler(client, creds, testSearchConfig(), zap.NewNop())
	summary, err := rec.Run(context.Background(), pipelineParams(), provision.Options{})
	require.NoError(t, err)

	assert.False(t, summary.Succeeded())
	assert.Equal(t, provision.StateFailedDataSource, summary.State)
	require.Len(t, summary.Outcomes, 1)
	assert.Equal(t, 403, summary.Outcomes[0].StatusCode)

	assert.Len(t, client.Calls, 1)
	client.AssertExpectations(t)
	creds.AssertExpectations(t)
}

func TestRun_CredentialErrorIsFatal(t *testing.T) {
	client := new(mocks.Client)
	creds := new(credmocks.Provider)

	creds.On("GetAdminKey", mock.Anything, "my-rg", "my-svc").
		Return("", &credentials.CredentialError{Service: "my-svc", Reason: "listAdminKeys returned status 401"})

	rec := provision.NewReconciler(client, creds, testSearchConfig(), zap.NewNop())
	summary, err := rec.Run(context.Background(), pipelineParams(), provision.Options{})

	var cerr *credentials.CredentialError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, provision.StateFailedDataSource, summary.State)
	assert.Empty(t, summary.Outcomes)
	assert.Empty(t, client.Calls)
}

func TestRun_ConfigurationErrorBeforeAnyCall(t *testing.T) {
	client := new(mocks.Client)
	creds := new(credmocks.Provider)

	params := pipelineParams()
	params.DataSource.IdentityResourceID = "/subscriptions/s/rg/mi" // both modes set

	rec := provision.NewReconciler(client, creds, testSearchConfig(), zap.NewNop())
	summary, err := rec.Run(context.Background(), params, provision.Options{})

	var cerr *provision.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, provision.StateFailedDataSource, summary.State)
	assert.Empty(t, client.Calls)
	assert.Empty(t, creds.Calls)
}

func TestRun_IndexFailureLeavesDataSourceInPlace(t *testing.T) {
	client := new(mocks.Client)
	creds := new(credmocks.Provider)

	creds.On("GetAdminKey", mock.Anything, "my-rg", "my-svc").Return("admin-key", nil).Times(2)

	client.On("Upsert", mock.Anything, matchKind(search.KindDataSource)).
		Return(search.Outcome{Kind: search.KindDataSource, Name: "docs-datasource", Succeeded: true, StatusCode: 200}).Once()
	client.On("Upsert", mock.Anything, matchKind(search.KindIndex)).
		Return(search.Outcome{Kind: search.KindIndex, Name: "docs-index", Succeeded: false, StatusCode: 400}).Once()

	rec := provision.NewReconciler(client, creds, testSearchConfig(), zap.NewNop())
	summary, err := rec.Run(context.Background(), pipelineParams(), provision.Options{})
	require.NoError(t, err)

	// No rollback: the successful data source outcome stays reported
	assert.Equal(t, provision.StateFailedIndex, summary.State)
	require.Len(t, summary.Outcomes, 2)
	assert.True(t, summary.Outcomes[0].Succeeded)
	assert.False(t, summary.Outcomes[1].Succeeded)
	assert.Len(t, client.Calls, 2)
}
