// Package services implements the driving ports: thin orchestration
// over the connectors, with verbose logging of each lookup. Services
// hold no state across calls; every invocation builds its results
// fresh and discards them.
package services
