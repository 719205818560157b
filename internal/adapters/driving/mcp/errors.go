// Package mcp provides an MCP (Model Context Protocol) server adapter
// for gitscout. It exposes trending discovery and readme retrieval as
// tools for AI assistants.
package mcp

import "errors"

// ErrMissingTrendingService is returned when the trending service is not provided.
var ErrMissingTrendingService = errors.New("mcp: trending service is required")

// ErrMissingReadmeService is returned when the readme service is not provided.
var ErrMissingReadmeService = errors.New("mcp: readme service is required")
