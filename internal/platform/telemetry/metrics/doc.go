// Package metrics provides operational metrics collection.
//
// This package handles dashboard observability for monitoring and alerting:
//
// # Metric Categories
//
//   - Latency: request duration histograms by route
//   - Errors: response counts by route and status code
//   - Upstream: remote API call latency by operation and outcome
//   - Resources: Go runtime and process collectors
//
// # Integration
//
// Metrics are collected via an HTTP middleware and an API client hook and are
// exposed in Prometheus format on the dashboard's /metrics route.
//
// Route labels collapse UUID path segments to "{id}" so per-entity paths do
// not explode label cardinality.
package metrics
