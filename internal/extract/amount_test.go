package extract

import "testing"

func TestAmount(t *testing.T) {
	tests := []struct {
		utterance string
		want      float64
	}{
		{"lapor pengeluaran makan 50 ribu", 50_000},
		{"expense transport 20k", 20_000},
		{"pengeluaran hotel rp 1,5 juta", 1_500_000},
		{"reimburse 2 juta", 2_000_000},
		{"lapor pengeluaran Rp75000", 75_000},
		{"lapor pengeluaran makan siang", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := Amount(tt.utterance); got != tt.want {
			t.Errorf("Amount(%q) = %v, want %v", tt.utterance, got, tt.want)
		}
	}
}

func TestAmountFirstMatchWins(t *testing.T) {
	// Two numbers in one utterance: only the first is taken.
	if got := Amount("taksi 30 ribu lalu makan 50 ribu"); got != 30_000 {
		t.Errorf("Amount() = %v, want 30000", got)
	}
}

func TestReviewer(t *testing.T) {
	tests := []struct {
		utterance string
		want      string
	}{
		{"jadwalkan review budi dengan rina wati", "rina wati"},
		{"schedule review by citra lestari", "citra lestari"},
		{"review citra oleh budi santoso", "budi santoso"},
		{"jadwalkan review performa budi", ""},
	}

	for _, tt := range tests {
		if got := Reviewer(tt.utterance); got != tt.want {
			t.Errorf("Reviewer(%q) = %q, want %q", tt.utterance, got, tt.want)
		}
	}
}
