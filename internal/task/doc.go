// Package task holds the in-memory registry of created background tasks.
//
// The registry is append-only and unbounded: records are never updated,
// deleted, or evicted, so a long-running process grows memory in
// proportion to the number of tasks ever created. Operators should
// restart or snapshot-and-rotate accordingly; Snapshot exposes the full
// contents so an external retention job can be layered on without API
// changes.
package task
