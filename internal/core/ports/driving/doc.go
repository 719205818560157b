// Package driving defines the primary (driving) ports: the interfaces
// external actors (MCP tools, CLI commands) use to invoke the core.
package driving
