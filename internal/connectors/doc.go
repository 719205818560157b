// Package connectors groups the implementations that retrieve content
// from GitHub-hosted sources: the trending listing page and the
// raw-content readme host. Each connector implements a driven port and
// receives its HTTP transport by injection.
package connectors
