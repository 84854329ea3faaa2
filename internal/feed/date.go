package feed

import (
	"regexp"
	"strings"
	"time"
)

// DisplayDateLayout is how card dates are shown.
const DisplayDateLayout = "Jan 02, 2006"

var dateLayouts = []string{
	"2006-01-02",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	time.RFC3339,
}

var looseDate = regexp.MustCompile(`^\d{1,2}\s+\w{3}\s+\d{4}$`)

// FormatDate renders a chat API date for display. Unparseable dates that
// already look like "D MMM YYYY" are returned as-is; anything else yields "".
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DisplayDateLayout)
		}
	}
	if looseDate.MatchString(s) {
		return s
	}
	return ""
}
