// Package branding holds product naming shared by page titles and logs.
package branding

// AppName is the product name shown in page titles.
const AppName = "Conecta Reparo"

// AdminSuffix marks dashboard page titles.
const AdminSuffix = "Admin"
