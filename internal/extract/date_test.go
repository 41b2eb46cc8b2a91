package extract

import (
	"testing"
	"time"
)

var now = time.Date(2026, time.March, 10, 14, 30, 0, 0, time.Local)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "dash range with month",
			utterance: "ajukan cuti sakit budi dari 1-5 januari",
			wantStart: date(2026, time.January, 1),
			wantEnd:   date(2026, time.January, 5),
		},
		{
			name:      "sampai range",
			utterance: "cuti 3 sampai 7 agustus",
			wantStart: date(2026, time.August, 3),
			wantEnd:   date(2026, time.August, 7),
		},
		{
			name:      "english to range with abbreviation",
			utterance: "leave from 2 to 4 feb",
			wantStart: date(2026, time.February, 2),
			wantEnd:   date(2026, time.February, 4),
		},
		{
			name:      "single date defaults end to next day",
			utterance: "ajukan cuti 15 agustus",
			wantStart: date(2026, time.August, 15),
			wantEnd:   date(2026, time.August, 16),
		},
		{
			name:      "besok",
			utterance: "ajukan cuti besok",
			wantStart: date(2026, time.March, 11),
			wantEnd:   date(2026, time.March, 12),
		},
		{
			name:      "hari ini",
			utterance: "ajukan cuti hari ini",
			wantStart: date(2026, time.March, 10),
			wantEnd:   date(2026, time.March, 11),
		},
		{
			name:      "past month still resolves to current year",
			utterance: "cuti 1-2 januari",
			wantStart: date(2026, time.January, 1),
			wantEnd:   date(2026, time.January, 2),
		},
		{
			name:      "no date",
			utterance: "ajukan cuti sakit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := DateRange(tt.utterance, now)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestDateRangeDayCount(t *testing.T) {
	// "1-5 januari" spans four whole days under the difference rule.
	start, end := DateRange("dari 1-5 januari", now)
	days := int(end.Sub(start) / (24 * time.Hour))
	if days != 4 {
		t.Errorf("day difference = %d, want 4", days)
	}
}

func TestSingleDate(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      time.Time
		wantOK    bool
	}{
		{
			name:      "indonesian month",
			utterance: "jadwalkan review 20 november",
			want:      date(2026, time.November, 20),
			wantOK:    true,
		},
		{
			name:      "month abbreviation",
			utterance: "review 5 des",
			want:      date(2026, time.December, 5),
			wantOK:    true,
		},
		{
			name:      "overflowed day is rejected",
			utterance: "cuti 31 februari",
			wantOK:    false,
		},
		{
			name:      "no date",
			utterance: "jadwalkan review performa",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SingleDate(tt.utterance, now)
			if ok != tt.wantOK {
				t.Fatalf("SingleDate() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("SingleDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthFromName(t *testing.T) {
	tests := []struct {
		in   string
		want time.Month
	}{
		{"januari", time.January},
		{"jan", time.January},
		{"january", time.January},
		{"agu", time.August},
		{"agustus", time.August},
		{"des", time.December},
		{"may", time.May},
		{"zzz", now.Month()}, // unknown falls back to the current month
	}

	for _, tt := range tests {
		if got := monthFromName(tt.in, now); got != tt.want {
			t.Errorf("monthFromName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
