package provision

import (
	"context"
	"encoding/json"
	"fmt"

	"search-provisioner/core/credentials"
	"search-provisioner/core/search"

	"go.uber.org/zap"
)

// Reconciler drives the three upserts in dependency order: data source, then
// index, then indexer. The order is mandatory because the indexer document
// references the other two by name and the service rejects it if either is
// missing.
//
// The pipeline is at-least-once and non-transactional: a failure halts it
// immediately but earlier stages are left in place. Because every stage is a
// full-replace upsert, re-running the whole pipeline after a partial failure
// is safe.
type Reconciler struct {
	client search.Client
	creds  credentials.Provider
	cfg    search.Config
	log    *zap.Logger
}

// NewReconciler creates a Reconciler. creds may be nil when every run will be
// a dry run; it is only consulted when a stage actually calls the service.
func NewReconciler(client search.Client, creds credentials.Provider, cfg search.Config, log *zap.Logger) *Reconciler {
	return &Reconciler{
		client: client,
		creds:  creds,
		cfg:    cfg,
		log:    log,
	}
}

// stage couples one resource's builder with its URL and state transitions.
type stage struct {
	kind    search.ResourceKind
	name    string
	url     string
	success State
	failed  State
	build   func() (any, error)
}

// Run executes the pipeline. Configuration and credential errors abort the
// current stage and are returned directly; transport and API failures are
// already collapsed into the stage's Outcome, so Run returns a nil error and
// a Summary whose terminal state identifies the failed stage.
func (r *Reconciler) Run(ctx context.Context, params PipelineParams, opts Options) (*Summary, error) {
	summary := &Summary{State: StateIdle}

	stages := []stage{
		{
			kind:    search.KindDataSource,
			name:    params.DataSource.Name,
			url:     search.DataSourceURL(params.Service, params.DataSource.Name, r.cfg.PreviewAPIVersion),
			success: StateDataSourceUpserted,
			failed:  StateFailedDataSource,
			build:   func() (any, error) { return BuildDataSource(params.DataSource) },
		},
		{
			kind:    search.KindIndex,
			name:    params.Index.Name,
			url:     search.IndexURL(params.Service, params.Index.Name, r.cfg.StableAPIVersion),
			success: StateIndexUpserted,
			failed:  StateFailedIndex,
			build:   func() (any, error) { return BuildIndex(params.Index) },
		},
		{
			kind:    search.KindIndexer,
			name:    params.Indexer.Name,
			url:     search.IndexerURL(params.Service, params.Indexer.Name, r.cfg.StableAPIVersion),
			success: StateIndexerUpserted,
			failed:  StateFailedIndexer,
			build:   func() (any, error) { return BuildIndexer(params.Indexer) },
		},
	}

	for _, st := range stages {
		outcome, err := r.runStage(ctx, params, opts, st)
		if err != nil {
			summary.State = st.failed
			return summary, err
		}

		summary.Outcomes = append(summary.Outcomes, outcome)
		if !outcome.Succeeded {
			summary.State = st.failed
			return summary, nil
		}
		summary.State = st.success
	}

	return summary, nil
}

func (r *Reconciler) runStage(ctx context.Context, params PipelineParams, opts Options, st stage) (search.Outcome, error) {
	doc, err := st.build()
	if err != nil {
		return search.Outcome{}, err
	}

	if err := ValidateDocument(st.kind, doc); err != nil {
		return search.Outcome{}, err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return search.Outcome{}, fmt.Errorf("failed to encode %s document: %w", st.kind, err)
	}

	if opts.DryRun {
		r.log.Info("Dry run: computed document",
			zap.String("resource_kind", string(st.kind)),
			zap.String("resource_name", st.name),
			zap.String("url", st.url),
			zap.ByteString("document", body),
		)
		return search.Outcome{
			Kind:      st.kind,
			Name:      st.name,
			Succeeded: true,
			Simulated: true,
		}, nil
	}

	// A fresh credential per stage: keys can rotate mid-pipeline.
	key, err := r.creds.GetAdminKey(ctx, params.ResourceGroup, params.Service)
	if err != nil {
		return search.Outcome{}, err
	}

	return r.client.Upsert(ctx, search.Request{
		Kind:   st.kind,
		Name:   st.name,
		URL:    st.url,
		APIKey: key,
		Body:   body,
	}), nil
}
