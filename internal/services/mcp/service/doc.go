// Package service hosts the MCP server that exposes the documentation
// content store to AI clients over stdio.
package service
