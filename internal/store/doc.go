// Package store defines the persistence interfaces the core consumes and
// the common error values their implementations return. Concrete
// implementations live under internal/platform.
package store
