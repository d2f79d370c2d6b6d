// Package domain contains the core entities of the application: users,
// task records, and the resolved identity attached to each request.
// Domain types carry no transport or storage dependencies.
package domain
