// Package domain defines the MCP resources and tools that expose the
// documentation content store.
package domain
