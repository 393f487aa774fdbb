// Package i18n resolves the dashboard language for a request and exposes
// printers backed by the embedded message catalogs.
package i18n
