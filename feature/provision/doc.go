// Package provision builds and reconciles the three-resource search
// pipeline: a blob data source, a search index, and an indexer linking the
// two.
//
// # Architecture
//
// The package has three layers:
//
// 1. Builders: pure, deterministic functions (BuildDataSource, BuildIndex,
// BuildIndexer) that turn parameters into complete desired-state documents.
// Identical inputs always produce byte-identical JSON.
//
// 2. Validation: every built document is checked against an embedded JSON
// Schema before submission, so drift between the builders and the wire
// contract fails fast as a ConfigurationError instead of a confusing remote
// rejection.
//
// 3. Reconciler: a strictly sequential state machine that upserts the three
// resources in dependency order, halts on the first failure, and reports a
// per-resource Summary. A dry run computes and logs every document and URL
// without any network call.
//
// # Guarantees
//
// There is no rollback: a failed stage leaves earlier upserts in place. Every
// upsert is a blind full replace, so re-running the pipeline is always safe
// (last writer wins).
package provision
