package trending

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

// periodStarsPattern captures the leading numeric token, thousands
// separators included, of a "123 stars today" style label.
var periodStarsPattern = regexp.MustCompile(`(\d+[,\d]*)\s*stars?`)

// extractEntry pulls the field set out of one repository fragment.
// Title and project link are mandatory: without them the fragment is
// skipped (ok=false). Every other field is an independent lookup that
// falls back to its sentinel, so one bad field never voids the entry.
func extractEntry(
	fragment *goquery.Selection, baseURL string, since domain.Since,
) (domain.TrendingEntry, bool) {
	link := fragment.Find("h2 a").First()
	if link.Length() == 0 {
		return domain.TrendingEntry{}, false
	}
	href, ok := link.Attr("href")
	if !ok || href == "" {
		return domain.TrendingEntry{}, false
	}
	title := collapseWhitespace(link.Text())
	if title == "" {
		return domain.TrendingEntry{}, false
	}

	entry := domain.TrendingEntry{
		Title:       title,
		ProjectURL:  baseURL + href,
		Description: domain.NoDescription,
		Language:    domain.UnknownLanguage,
		TotalStars:  domain.ZeroCount,
		TotalForks:  domain.ZeroCount,
		PeriodStars: domain.ZeroCount,
	}

	if desc := strings.TrimSpace(fragment.Find("p.col-9").First().Text()); desc != "" {
		entry.Description = desc
	}
	if lang := strings.TrimSpace(fragment.Find("span[itemprop=programmingLanguage]").First().Text()); lang != "" {
		entry.Language = lang
	}
	if stars := anchorTextBySuffix(fragment, "/stargazers"); stars != "" {
		entry.TotalStars = stars
	}
	if forks := anchorTextBySuffix(fragment, "/forks"); forks != "" {
		entry.TotalForks = forks
	}
	if period := extractPeriodStars(fragment, since); period != "" {
		entry.PeriodStars = period
	}

	return entry, true
}

// anchorTextBySuffix returns the collapsed text of the first anchor
// whose href ends with suffix, or "".
func anchorTextBySuffix(fragment *goquery.Selection, suffix string) string {
	var text string
	fragment.Find("a[href]").EachWithBreak(func(_ int, anchor *goquery.Selection) bool {
		href, _ := anchor.Attr("href")
		if !strings.HasSuffix(href, suffix) {
			return true
		}
		text = collapseWhitespace(anchor.Text())
		return false
	})
	return text
}

// extractPeriodStars scans the fragment's span labels for one that
// mentions "stars" together with the phrase of the requested window,
// and returns its leading numeric token. The first span containing both
// substrings ends the scan even when no number is found, matching the
// page's single period-stars label per fragment.
func extractPeriodStars(fragment *goquery.Selection, since domain.Since) string {
	phrase := since.WindowPhrase()
	var period string
	fragment.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		text := strings.ToLower(collapseWhitespace(span.Text()))
		if !strings.Contains(text, "stars") || !strings.Contains(text, phrase) {
			return true
		}
		if m := periodStarsPattern.FindStringSubmatch(text); m != nil {
			period = m[1]
		}
		return false
	})
	return period
}

// collapseWhitespace folds runs of whitespace, newlines included, into
// single spaces. Listing titles span multiple lines in the source HTML.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
