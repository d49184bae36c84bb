// Package cache persists project snapshots in a local SQLite database so
// listing and inspection keep working when the backend is unreachable.
//
// The cache is strictly a convenience copy. The backend owns every project
// record; a fetched snapshot wholesale-replaces whatever was stored before.
package cache
