package db

// SchemaSQL is the complete schema for fresh installs. The whole data
// model lives in one key/value table: each key names a collection and its
// value is that collection serialized as JSON. Every save rewrites the
// whole collection, so a write is atomic with respect to itself but not
// across collections.
//
// This is the single source of truth for the schema; tests create their
// in-memory databases through GetSchemaSQL rather than hardcoding CREATE
// TABLE statements.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS collections (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema SQL.
func GetSchemaSQL() string {
	return SchemaSQL
}
