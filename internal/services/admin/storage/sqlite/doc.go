// Package sqlite provides SQLite-backed admin persistence.
package sqlite
