// Package mocks provides hand-rolled test doubles for the interfaces the
// core consumes. Each mock exposes function fields so individual test
// cases can override behavior, with simple default-value fallbacks.
package mocks
