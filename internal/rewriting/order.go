package rewriting

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// currentMarkers covers every localized end-date marker the rewrite can
// emit. Matching is case-insensitive.
var currentMarkers = []string{"atual", "present", "présent", "present day", "atualmente"}

var (
	monthYearRe = regexp.MustCompile(`(\d{1,2})\s*[/\-.]\s*(\d{4})`)
	yearRe      = regexp.MustCompile(`\d{4}`)
)

// sortExperiences orders entries reverse-chronologically: ongoing roles
// first, then by end date descending, ties broken by start date descending.
// The model is told to do this too, but its ordering is not trusted.
func sortExperiences(experiences []RewrittenExperience) {
	sort.SliceStable(experiences, func(i, j int) bool {
		si, ei := periodBounds(experiences[i].Period)
		sj, ej := periodBounds(experiences[j].Period)
		if ei != ej {
			return ei > ej
		}
		return si > sj
	})
}

// periodBounds extracts comparable start and end keys from a display period
// such as "03/2022 - Atual" or "2019 - 2021". An ongoing role gets the
// maximum end key; unparseable parts get zero and sink to the bottom.
func periodBounds(period string) (start, end int) {
	parts := splitPeriod(period)
	start = dateKey(parts[0])
	if len(parts) < 2 {
		return start, start
	}
	if isCurrent(parts[1]) {
		return start, int(^uint(0) >> 1)
	}
	return start, dateKey(parts[1])
}

func splitPeriod(period string) []string {
	for _, sep := range []string{" - ", " – ", " — ", " a ", " to ", " à "} {
		if strings.Contains(period, sep) {
			parts := strings.SplitN(period, sep, 2)
			return []string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}
		}
	}
	return []string{strings.TrimSpace(period)}
}

func isCurrent(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return true
	}
	for _, marker := range currentMarkers {
		if s == marker {
			return true
		}
	}
	return false
}

// dateKey collapses a date fragment to year*100+month so keys compare
// chronologically. A bare year counts as January of that year.
func dateKey(s string) int {
	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return year*100 + month
		}
		return year * 100
	}
	if m := yearRe.FindString(s); m != "" {
		year, _ := strconv.Atoi(m)
		return year * 100
	}
	return 0
}
