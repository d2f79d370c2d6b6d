// Package api contains the HTTP handlers exposing the core services:
// account registration and login, the users listing, task creation, the
// live task-event subscription, and the directory scan utility.
package api
