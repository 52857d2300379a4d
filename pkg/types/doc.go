// Package types defines the entity types, configuration, and standard
// error values for the Eavquent attribute storage system. The engine in
// pkg/eav and the SQLite backend in internal/sqlite both build on the
// types declared here.
package types
