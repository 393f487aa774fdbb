// Package timeouts defines shared timeout constants used by the dashboard
// process and its remote API client.
package timeouts

import "time"

// APIRequest caps the time allowed for a single request from the dashboard
// to the remote maintenance API when no explicit timeout is configured.
const APIRequest = 5 * time.Second

// APIRetryBase is the first backoff delay between retried API reads.
const APIRetryBase = 100 * time.Millisecond

// APIRetryMax caps the backoff delay between retried API reads.
const APIRetryMax = 1 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
