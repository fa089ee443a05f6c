// Package migrations embeds the goose SQL migrations so the server binary
// and the integration tests apply the identical schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Dir is the directory goose resolves migration files against within FS.
const Dir = "."
