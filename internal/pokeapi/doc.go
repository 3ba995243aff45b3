// Package pokeapi provides a read-only client for the PokeAPI REST catalog.
//
// # Overview
//
// dexter needs exactly one endpoint:
//
//   - GET {base}/pokemon/{id-or-name}
//
// The same payload backs both lookups. FetchSummary decodes only the identity
// (id and name) used by the roster; FetchDetail decodes the forms and default
// sprite rendered by an entry view.
//
// # Errors
//
// Any non-2xx status is reported as a *StatusError, which matches ErrNotFound
// under errors.Is. Transport and decode failures are returned wrapped with the
// identifier that was requested. Callers decide what to surface; the client
// never retries and never caches.
//
// # Testing
//
// Code that depends on the catalog should accept the Catalog interface so
// tests can substitute deterministic fixtures. The client itself is tested
// against httptest servers.
package pokeapi
