// Package domain defines the core business entities for gitscout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TrendingEntry: One repository from the trending listing
//   - TrendingQuery: A validated time window plus language filter
//   - ReadmeLookup: The outcome of resolving one repository's readme
//   - Settings: Tunable endpoints, timeouts and bounds
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
