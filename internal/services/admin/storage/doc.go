// Package storage defines persistence contracts for the dashboard's local
// state.
//
// The remote API owns every maintenance, pledge and action. Locally the
// dashboard only keeps a log of the changes it made, shown on the dashboard.
package storage
