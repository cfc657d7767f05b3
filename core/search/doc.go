// Package search provides the client for the search service's management API.
//
// It wraps net/http with strict transport timeouts to provide a single
// operation: an idempotent PUT upsert that either creates a resource or fully
// replaces it. Response classification is binary: any 2xx status succeeds,
// everything else (including transport failure) fails with the raw detail
// persisted to a FailureSink for postmortem inspection.
//
// # Client Interface
//
// The Client interface abstracts the HTTP implementation, making it easy to
// mock upserts for unit testing (as seen in core/search/mocks).
//
// # Full-replace contract
//
// Upsert is a blind overwrite, not a merge. There is no partial-update path;
// callers must always submit the complete desired document.
//
// # Usage
//
//	sink := search.NewFileSink("artifacts")
//	client := search.NewClient(cfg, sink, log)
//	outcome := client.Upsert(ctx, search.Request{
//	    Kind: search.KindIndex,
//	    Name: "docs-index",
//	    URL:  search.IndexURL("my-service", "docs-index", cfg.StableAPIVersion),
//	    APIKey: key,
//	    Body: doc,
//	})
package search
