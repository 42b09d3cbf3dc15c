package migrations

import "embed"

// FS holds the campaign and participation schema.
//
//go:embed *.sql
var FS embed.FS

// Latest is the schema version the service expects.
const Latest = 1
