// Package timeouts defines shared timeout constants used across the
// service. Centralizing these values prevents drift between the HTTP
// server and CLI entry points and makes the durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StoreOp caps a single storage round trip issued from a CLI entry point.
const StoreOp = 10 * time.Second
