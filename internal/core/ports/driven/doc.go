// Package driven defines the secondary (driven) ports: interfaces the
// core depends on, implemented by outbound adapters and connectors.
package driven
