package domain

import "strings"

// Sentinel display values used when the listing page omits a field.
// Star and fork counts stay display strings because the page formats
// them with thousands separators.
const (
	NoDescription   = "No description"
	UnknownLanguage = "Unknown"
	ZeroCount       = "0"
)

// Since selects the trending time window.
type Since string

// Supported time windows.
const (
	// SinceDaily covers repositories trending today.
	SinceDaily Since = "daily"

	// SinceWeekly covers repositories trending this week.
	SinceWeekly Since = "weekly"

	// SinceMonthly covers repositories trending this month.
	SinceMonthly Since = "monthly"
)

// ValidSinceValues returns the accepted window values in display order.
func ValidSinceValues() []Since {
	return []Since{SinceDaily, SinceWeekly, SinceMonthly}
}

// IsValid returns true if the window value is recognised.
func (s Since) IsValid() bool {
	switch s {
	case SinceDaily, SinceWeekly, SinceMonthly:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Since) String() string {
	return string(s)
}

// Display returns the human-readable window name used in reports.
func (s Since) Display() string {
	switch s {
	case SinceDaily:
		return "Today"
	case SinceWeekly:
		return "This Week"
	case SinceMonthly:
		return "This Month"
	default:
		return string(s)
	}
}

// WindowPhrase returns the lowercase phrase the listing page uses in its
// period-stars labels for this window.
func (s Since) WindowPhrase() string {
	switch s {
	case SinceWeekly:
		return "this week"
	case SinceMonthly:
		return "this month"
	default:
		return "today"
	}
}

// TrendingQuery selects which trending listing to fetch.
type TrendingQuery struct {
	// Since is the time window. Required.
	Since Since

	// Language is an optional programming language filter.
	// Empty means all languages.
	Language string
}

// Normalise trims and lower-cases the language filter, matching the
// path segment convention of the listing page.
func (q TrendingQuery) Normalise() TrendingQuery {
	q.Language = strings.ToLower(strings.TrimSpace(q.Language))
	return q
}

// Validate checks the time window against the fixed set of values.
func (q TrendingQuery) Validate() error {
	if !q.Since.IsValid() {
		return ErrInvalidSince
	}
	return nil
}

// TrendingEntry is one repository from the trending listing, in the
// order the page presents it. Title and ProjectURL are always set;
// every other field falls back to its sentinel independently.
type TrendingEntry struct {
	Title       string
	ProjectURL  string
	Description string
	Language    string
	TotalStars  string
	TotalForks  string

	// PeriodStars is the star count gained within the requested
	// window, distinct from TotalStars.
	PeriodStars string
}
