package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date patterns understood by DateRange, tried in this order:
//
//	"1-5 januari", "1 sampai 5 januari", "1 to 5 jan"  (range)
//	"15 agustus"                                       (single day)
//	"besok" / "tomorrow", "hari ini" / "today"         (relative)
var (
	rangePattern  = regexp.MustCompile(`(\d{1,2})\s*(?:-|sampai|hingga|to)\s*(\d{1,2})\s+(\w+)`)
	singlePattern = regexp.MustCompile(`(\d{1,2})\s+(\w+)`)
)

var indonesianMonths = []string{
	"januari", "februari", "maret", "april", "mei", "juni",
	"juli", "agustus", "september", "oktober", "november", "desember",
}

var englishMonths = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// DateRange extracts a start/end date pair from the utterance. The year is
// always now's calendar year; there is no way to spell a year in the input.
// When no pattern matches, both returned times are zero and the caller must
// ask the user instead of guessing.
func DateRange(utterance string, now time.Time) (start, end time.Time) {
	lower := strings.ToLower(utterance)

	if m := rangePattern.FindStringSubmatch(lower); m != nil {
		startDay, _ := strconv.Atoi(m[1])
		endDay, _ := strconv.Atoi(m[2])
		month := monthFromName(m[3], now)
		if s, ok := makeDate(now.Year(), month, startDay); ok {
			if e, ok := makeDate(now.Year(), month, endDay); ok {
				return s, e
			}
		}
	}

	if single, ok := SingleDate(utterance, now); ok {
		return single, single.AddDate(0, 0, 1)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case strings.Contains(lower, "besok") || strings.Contains(lower, "tomorrow"):
		start = today.AddDate(0, 0, 1)
		return start, start.AddDate(0, 0, 1)
	case strings.Contains(lower, "hari ini") || strings.Contains(lower, "today"):
		return today, today.AddDate(0, 0, 1)
	}

	return time.Time{}, time.Time{}
}

// SingleDate extracts one "day month" date, defaulting the year to now's.
func SingleDate(utterance string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(utterance)
	m := singlePattern.FindStringSubmatch(lower)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month := monthFromName(m[2], now)
	d, ok := makeDate(now.Year(), month, day)
	return d, ok
}

// monthFromName matches a candidate token against the Indonesian then the
// English month list. The test is a bidirectional prefix so abbreviations
// work in both directions ("jan" matches "januari", "agustus" matches
// "agu"). An unrecognized token falls back to the current month.
func monthFromName(name string, now time.Time) time.Month {
	for i, m := range indonesianMonths {
		if strings.HasPrefix(m, name) || strings.HasPrefix(name, m) {
			return time.Month(i + 1)
		}
	}
	for i, m := range englishMonths {
		if strings.HasPrefix(m, name) || strings.HasPrefix(name, m) {
			return time.Month(i + 1)
		}
	}
	return now.Month()
}

// makeDate builds a date and rejects overflowed days (e.g. 31 februari),
// which time.Date would silently normalize into the next month.
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
