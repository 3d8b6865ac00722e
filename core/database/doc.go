// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration. The database is an
// optional dependency: it backs the persistent cache and the schema health check,
// and the application degrades to an in-memory cache without it.
//
// # Connect
//
// The Connect function establishes a MySQL connection with sane pool and
// timeout settings and verifies it with a ping.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the
// status feature to verify that the cache table matches its expected model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "api_cache")
package database
