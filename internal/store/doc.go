// Package store implements the local job cache.
//
// Jobs submitted or fetched through this client are mirrored into a small
// SQLite database in the user's config directory so that `qcc job list
// --cached` can answer without network access. The cache is advisory: it is
// refreshed best-effort after API calls and a cache failure never fails the
// user-facing operation.
package store
