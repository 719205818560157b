package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidSince indicates an unrecognised time window value.
	// Detected before any network call is made.
	ErrInvalidSince = errors.New("since must be one of: daily, weekly, monthly")

	// ErrNoRepositories indicates an empty repository list was supplied.
	ErrNoRepositories = errors.New("repositories cannot be empty: provide at least one owner/name")
)

// FetchError represents a failed retrieval of the trending listing page,
// either a transport failure or a non-2xx response. It carries the
// attempted URL for diagnosability.
type FetchError struct {
	StatusCode int
	URL        string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NoResultsError indicates the listing page was fetched successfully but
// contained no repository fragments. This is either a genuinely empty
// trending period or a page-layout change, and is reported distinctly
// from a transport failure.
type NoResultsError struct {
	URL string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no trending repositories found at %s", e.URL)
}

// IsFetchError checks if the error is a listing page retrieval failure.
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsNoResults checks if the error is an empty-listing condition.
func IsNoResults(err error) bool {
	var noResults *NoResultsError
	return errors.As(err, &noResults)
}
