package hr

import (
	"fmt"
	"strings"
	"time"
)

// Indonesian month and weekday names for display formatting. The standard
// library only formats English dates, so these are spelled out here.
var monthNames = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var weekdayNames = []string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

// FormatDate renders a date as "2 Januari 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// FormatDateWithWeekday renders a date as "Jumat, 2 Januari 2026".
func FormatDateWithWeekday(t time.Time) string {
	return fmt.Sprintf("%s, %s", weekdayNames[t.Weekday()], FormatDate(t))
}

// FormatRupiah renders an amount as "Rp50.000,00" with Indonesian
// dot-grouped thousands and a comma decimal separator.
func FormatRupiah(amount float64) string {
	whole := int64(amount)
	cents := int64((amount-float64(whole))*100 + 0.5)
	if cents >= 100 {
		whole++
		cents -= 100
	}

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return fmt.Sprintf("Rp%s,%02d", strings.Join(groups, "."), cents)
}
