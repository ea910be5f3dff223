// Package timeouts defines the timeout constants shared by clidocs processes.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Write caps the time spent writing one rendered page.
const Write = 15 * time.Second

// Idle bounds how long keep-alive connections stay open between requests.
const Idle = 60 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown bounds the final span flush when a process exits.
const TelemetryShutdown = 5 * time.Second
