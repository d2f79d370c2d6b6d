// Package service contains the application services that orchestrate the
// domain, stores, token authority, and event bus on behalf of the API
// layer.
package service
