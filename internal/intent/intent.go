// Package intent extracts structured travel details from free-text chat
// messages. Extraction is heuristic and best-effort: a field is only ever
// overwritten by a fresh match, never cleared.
package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// DateRange holds raw date strings as the user typed them (e.g. "5th jan 2025").
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TravelInfo is the per-session accumulated trip knowledge. Zero values mean
// "not yet known".
type TravelInfo struct {
	Destination string     `json:"destination,omitempty"`
	Source      string     `json:"source,omitempty"`
	Dates       *DateRange `json:"dates,omitempty"`
	Budget      int        `json:"budget,omitempty"`
}

var (
	// The source run stops at a following "to"/"in" so that a single message
	// like "from paris to tokyo" fills both fields.
	destinationRe = regexp.MustCompile(`(?:to|in)\s+([a-z][a-z\s]*)`)
	sourceRe      = regexp.MustCompile(`from\s+([a-z][a-z\s]*?)(?:\s+(?:to|in)\b|$)`)
	dateRe        = regexp.MustCompile(`\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*(?:\s+\d{4})?`)
	budgetRe      = regexp.MustCompile(`(\d+(?:,\d+)?)\s*(?:dollars|usd|inr|eur|gbp|₹|€|£|\$)`)
)

// Extract applies the four patterns to message and returns an updated copy of
// info. Rules are independent; a non-matching pattern leaves the previous
// value untouched. Never fails.
func Extract(info TravelInfo, message string) TravelInfo {
	m := strings.ToLower(message)

	if match := destinationRe.FindStringSubmatch(m); match != nil {
		info.Destination = strings.TrimSpace(match[1])
	}
	if match := sourceRe.FindStringSubmatch(m); match != nil {
		info.Source = strings.TrimSpace(match[1])
	}
	// Need at least two date mentions to form a range; matches beyond the
	// second are ignored.
	if dates := dateRe.FindAllString(m, -1); len(dates) >= 2 {
		info.Dates = &DateRange{Start: dates[0], End: dates[1]}
	}
	if match := budgetRe.FindStringSubmatch(m); match != nil {
		if n, err := strconv.Atoi(strings.ReplaceAll(match[1], ",", "")); err == nil {
			info.Budget = n
		}
	}
	return info
}
