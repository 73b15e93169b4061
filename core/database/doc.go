// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or
// SQLite (development and tests) connections based on the application's
// configuration.
//
// # Connect
//
// The Connect function establishes a connection to the database. The catalog
// record models themselves live in feature packages; this package is agnostic
// to the schema regarding connection establishment.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. GetTableColumns
// retrieves column definitions for a table, which the serve command uses to
// verify that the catalog tables look like the record models expect before
// accepting traffic.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "videogame_records")
package database
