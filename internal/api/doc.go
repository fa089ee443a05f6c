// Package api implements the HTTP handlers of the task service. Handlers
// compose the verified identity from the auth middleware with store calls and
// map store outcomes to response codes; they perform no direct data access.
package api
