// Package eav implements the dynamic attribute overlay engine. An Overlay
// composes a host entity with the property definitions of its entity type
// and the value rows of its instance, exposing them through ordinary
// attribute get/set calls. Reads and writes operate on in-memory state;
// superseded rows are queued for deletion and all changes become durable
// only when Save flushes them to the backing Store.
package eav
