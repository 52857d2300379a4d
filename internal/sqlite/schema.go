package sqlite

// Schema DDL. The entity tables themselves are ordinary schema-managed
// tables; only the properties and property_values tables belong to the
// attribute engine.
const (
	createItems = `CREATE TABLE IF NOT EXISTS items (
    item_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createProperties = `CREATE TABLE IF NOT EXISTS properties (
    property_id TEXT PRIMARY KEY,
    entity_type TEXT NOT NULL,
    name TEXT NOT NULL,
    multivalue INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    UNIQUE (entity_type, name)
);`

	createPropertyValues = `CREATE TABLE IF NOT EXISTS property_values (
    value_id TEXT PRIMARY KEY,
    property_id TEXT NOT NULL,
    entity_type TEXT NOT NULL,
    entity_id TEXT NOT NULL,
    value TEXT NOT NULL,
    FOREIGN KEY (property_id) REFERENCES properties(property_id)
);`

	createPropertyValuesIndex = `CREATE INDEX IF NOT EXISTS idx_property_values_entity
    ON property_values(entity_type, entity_id);`
)

// schemaStatements returns every DDL statement in execution order.
func schemaStatements() []string {
	return []string{
		createItems,
		createProperties,
		createPropertyValues,
		createPropertyValuesIndex,
	}
}
