// Package timeouts defines shared timeout constants for the server process.
// Centralizing these values keeps the durations discoverable and prevents
// drift between the HTTP surface and storage boundaries.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionTTL bounds how long an admin session token stays valid.
const SessionTTL = 24 * time.Hour
