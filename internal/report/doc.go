// Package report renders lookup results into the human-readable text
// blocks returned across the tool boundary.
//
// The boundary must always receive a well-formed text payload, so every
// error class has a formatter here too: failures accumulate as
// ❌-prefixed lines inside the report instead of propagating as faults.
// Formatters are pure; they hold no state and perform no I/O.
package report
