// Package credentials resolves administrative keys for the search service.
//
// The Provider interface exposes one synchronous lookup. Two implementations
// exist: Static returns a directly configured key, and Management calls the
// cloud provider's listAdminKeys operation with a caller-supplied bearer
// token. New selects between them from configuration.
//
// Lookups are never cached; the reconciler resolves a fresh key per stage,
// and a failed lookup is fatal to every downstream upsert.
package credentials
