// Package catalog records generated builds in a SQLite database.
//
// Each entry keeps the recipe YAML a build was made from, its bounding size,
// facet count, output file and, for bunkers, the bay table (what occupies
// every wall bay). Entries are keyed by random UUIDs.
//
// The schema is versioned with golang-migrate; migrations are embedded and
// applied by Open, so a catalog file is always at the latest version.
//
// Every method takes a context.Context and is safe for use by one goroutine
// at a time per Catalog; the underlying pool holds a single connection.
package catalog
