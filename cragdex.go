// Package cragdex extracts structured climbing-route records from the
// HTML pages of a route database site. It normalizes loosely-structured
// markup into uniform records (name, grade, description, access notes,
// user ratings, location, images) and persists collections as JSON, CSV,
// or SQLite.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// resty/, sqlite/).
package cragdex
