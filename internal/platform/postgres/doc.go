// Package postgres provides PostgreSQL implementations of the store
// interfaces, using parameterized statements over a pooled database/sql
// connection (pgx in stdlib driver mode).
package postgres
