// Package models defines the GORM record types backing the catalog's local
// store. Records are keyed by business keys (videogame title, developer
// name); the schema carries no surrogate identifiers.
package models
