package agent

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/xtreme16/asri/internal/store"
)

// fakeFunctions records every call and returns a recognizable line per
// operation so tests can assert both the routing and the arguments.
type fakeFunctions struct {
	leaveName, leaveType   string
	leaveStart, leaveEnd   time.Time
	reviewName, reviewer   string
	reviewDate             time.Time
	statusName             string
	expenseName, category  string
	amount                 float64
	lookupName             string
}

func (f *fakeFunctions) ApplyForLeave(name, leaveType string, start, end time.Time) string {
	f.leaveName, f.leaveType = name, leaveType
	f.leaveStart, f.leaveEnd = start, end
	return "fake: leave confirmed"
}

func (f *fakeFunctions) SchedulePerformanceReview(name, reviewer string, date time.Time) string {
	f.reviewName, f.reviewer, f.reviewDate = name, reviewer, date
	return "fake: review scheduled"
}

func (f *fakeFunctions) CheckLeaveRequestStatus(name string) string {
	f.statusName = name
	return "fake: status"
}

func (f *fakeFunctions) SubmitExpenseReport(name, category string, amount float64) string {
	f.expenseName, f.category, f.amount = name, category, amount
	return "fake: expense recorded"
}

func (f *fakeFunctions) LookupColleagueInfo(name string) string {
	f.lookupName = name
	return "fake: colleague card"
}

var testNow = time.Date(2026, time.March, 10, 14, 30, 0, 0, time.Local)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// newTestEngine seeds a three-person roster and returns the engine, the
// recording collaborator, and the data directory.
func newTestEngine(t *testing.T) (*Engine, *fakeFunctions, string) {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, store.EmployeesFile,
		"id,nama,email,jabatan,departemen,manager_id,tanggal_bergabung,status\n"+
			"101,Budi Santoso,budi@contoso.id,Direktur Utama,Manajemen,,2015-01-12,Aktif\n"+
			"102,Rina Wati,rina@contoso.id,HR Manager,HRD,101,2017-03-01,Aktif\n"+
			"103,Citra Lestari,citra@contoso.id,Software Engineer,IT,102,2020-06-15,Cuti\n")
	writeFixture(t, dir, store.BalancesFile,
		"employee_id,jenis_cuti,sisa_hari\n"+
			"101,Sakit,5\n"+
			"101,Tahunan,12\n"+
			"102,Tahunan,8\n"+
			"103,Tahunan,0\n")
	writeFixture(t, dir, store.RequestsFile,
		"id,employee_id,jenis_cuti,tanggal_mulai,tanggal_selesai,status\n")
	writeFixture(t, dir, store.ReviewsFile,
		"id,employee_id,reviewer_id,tanggal,skor,status\n")

	st, err := store.Open(dir, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	fns := &fakeFunctions{}
	e := New(st, fns, nil)
	e.now = func() time.Time { return testNow }
	return e, fns, dir
}

func TestRespondQuestions(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{
			name:      "manager of regular employee",
			utterance: "siapa manajer Rina?",
			want:      "Manajer Rina Wati adalah Budi Santoso.",
		},
		{
			name:      "manager of top of the chart",
			utterance: "siapa manajer budi?",
			want:      "Budi Santoso adalah direktur utama (tidak memiliki manajer).",
		},
		{
			name:      "leave balance sorted by type",
			utterance: "berapa sisa cuti budi?",
			want:      "Sisa cuti Budi Santoso:\n- Sakit: 5 hari\n- Tahunan: 12 hari",
		},
		{
			name:      "department",
			utterance: "apa departemen rina?",
			want:      "Rina Wati bekerja di departemen HRD.",
		},
		{
			name:      "job title",
			utterance: "apa jabatan citra?",
			want:      "Citra Lestari memiliki jabatan Software Engineer.",
		},
		{
			name:      "status",
			utterance: "bagaimana status citra?",
			want:      "Status Citra Lestari adalah Cuti.",
		},
		{
			name:      "email",
			utterance: "apa email citra?",
			want:      "Email Citra Lestari adalah citra@contoso.id.",
		},
		{
			name:      "question without subject prompts for a name",
			utterance: "siapa manajer dia?",
			want:      "Siapa yang ingin Anda tanyakan manajernya?",
		},
		{
			name:      "question outside the known topics",
			utterance: "apakah bumi bulat",
			want:      questionHelpText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newTestEngine(t)
			if got := e.Respond(tt.utterance); got != tt.want {
				t.Errorf("Respond(%q) = %q, want %q", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestRespondFallbackTexts(t *testing.T) {
	e, _, _ := newTestEngine(t)

	if got := e.Respond("   "); got != RepromptText {
		t.Errorf("blank input: got %q, want reprompt", got)
	}
	if got := e.Respond("halo"); got != unclassifiedText {
		t.Errorf("unclassified input: got %q, want unclassified text", got)
	}
	if got := e.Respond("jalankan prosedur"); got != commandHelpText {
		t.Errorf("unroutable command: got %q, want command help", got)
	}
}

func TestSubmitLeaveRequest(t *testing.T) {
	e, fns, dir := newTestEngine(t)

	got := e.Respond("ajukan cuti sakit budi dari 1-3 januari")
	if got != "fake: leave confirmed" {
		t.Fatalf("Respond() = %q, want collaborator confirmation", got)
	}

	if fns.leaveName != "Budi Santoso" || fns.leaveType != "Sakit" {
		t.Errorf("collaborator got (%q, %q), want (Budi Santoso, Sakit)", fns.leaveName, fns.leaveType)
	}
	wantStart := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2026, time.January, 3, 0, 0, 0, 0, time.Local)
	if !fns.leaveStart.Equal(wantStart) || !fns.leaveEnd.Equal(wantEnd) {
		t.Errorf("collaborator got dates (%v, %v), want (%v, %v)",
			fns.leaveStart, fns.leaveEnd, wantStart, wantEnd)
	}

	data, err := os.ReadFile(filepath.Join(dir, store.RequestsFile))
	if err != nil {
		t.Fatal(err)
	}
	wantRow := "LR001,101,Sakit,2026-01-01,2026-01-03,Menunggu Persetujuan\n"
	if !strings.Contains(string(data), wantRow) {
		t.Errorf("leave_requests.csv = %q, want row %q", data, wantRow)
	}

	// a two-day request against a balance of five leaves three
	days, _ := e.store.Balance("101", "Sakit")
	if days != 3 {
		t.Errorf("remaining Sakit balance = %d, want 3", days)
	}
}

func TestSubmitLeaveRequestInsufficientBalance(t *testing.T) {
	e, _, dir := newTestEngine(t)

	got := e.Respond("ajukan cuti tahunan citra dari 5-6 februari")
	want := "Sisa cuti Tahunan untuk Citra Lestari sudah habis atau tidak cukup."
	if got != want {
		t.Errorf("Respond() = %q, want %q", got, want)
	}

	data, err := os.ReadFile(filepath.Join(dir, store.RequestsFile))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Errorf("leave_requests.csv gained rows on a rejected request: %q", data)
	}
}

func TestSubmitLeaveRequestPrompts(t *testing.T) {
	e, _, _ := newTestEngine(t)

	if got := e.Respond("ajukan cuti sakit"); got != "Siapa yang ingin mengajukan cuti?" {
		t.Errorf("missing subject: got %q", got)
	}
	if got := e.Respond("ajukan cuti sakit budi"); got != "Kapan tanggal cuti yang diinginkan? (contoh: dari 1-5 januari)" {
		t.Errorf("missing dates: got %q", got)
	}
}

func TestSubmitLeaveRequestPersistenceFailure(t *testing.T) {
	e, _, dir := newTestEngine(t)
	if err := os.Remove(filepath.Join(dir, store.BalancesFile)); err != nil {
		t.Fatal(err)
	}

	got := e.Respond("ajukan cuti sakit budi dari 1-3 januari")
	if got != "Terjadi error saat menyimpan pengajuan cuti." {
		t.Errorf("Respond() = %q, want persistence failure line", got)
	}

	// the in-memory balance stays untouched when the rewrite fails
	days, _ := e.store.Balance("101", "Sakit")
	if days != 5 {
		t.Errorf("balance after failed deduction = %d, want 5", days)
	}
}

func TestScheduleReview(t *testing.T) {
	e, fns, dir := newTestEngine(t)

	got := e.Respond("jadwalkan review performa citra dengan rina wati")
	if got != "fake: review scheduled" {
		t.Fatalf("Respond() = %q, want collaborator confirmation", got)
	}
	if fns.reviewName != "Citra Lestari" || fns.reviewer != "Rina Wati" {
		t.Errorf("collaborator got (%q, %q), want (Citra Lestari, Rina Wati)", fns.reviewName, fns.reviewer)
	}
	if !fns.reviewDate.Equal(testNow.AddDate(0, 0, 7)) {
		t.Errorf("review date = %v, want a week out", fns.reviewDate)
	}

	data, err := os.ReadFile(filepath.Join(dir, store.ReviewsFile))
	if err != nil {
		t.Fatal(err)
	}
	wantRow := "PR01,103,102,2026-03-17,0,Terjadwal\n"
	if !strings.Contains(string(data), wantRow) {
		t.Errorf("performance_reviews.csv = %q, want row %q", data, wantRow)
	}
}

func TestScheduleReviewDefaultsReviewer(t *testing.T) {
	e, fns, dir := newTestEngine(t)

	got := e.Respond("jadwalkan review budi")
	if got != "fake: review scheduled" {
		t.Fatalf("Respond() = %q, want collaborator confirmation", got)
	}
	if fns.reviewer != "Manager" {
		t.Errorf("reviewer = %q, want the default", fns.reviewer)
	}

	data, err := os.ReadFile(filepath.Join(dir, store.ReviewsFile))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "PR01,101,999,") {
		t.Errorf("performance_reviews.csv = %q, want sentinel reviewer id", data)
	}
}

func TestScheduleReviewExplicitDate(t *testing.T) {
	e, fns, _ := newTestEngine(t)

	e.Respond("jadwalkan review performa citra 20 april")
	want := time.Date(2026, time.April, 20, 0, 0, 0, 0, time.Local)
	if !fns.reviewDate.Equal(want) {
		t.Errorf("review date = %v, want %v", fns.reviewDate, want)
	}
}

func TestCheckLeaveStatus(t *testing.T) {
	e, fns, _ := newTestEngine(t)

	if got := e.Respond("cek status cuti budi"); got != "fake: status" {
		t.Fatalf("Respond() = %q, want collaborator line", got)
	}
	if fns.statusName != "Budi Santoso" {
		t.Errorf("collaborator got %q, want Budi Santoso", fns.statusName)
	}
}

func TestSubmitExpense(t *testing.T) {
	e, fns, _ := newTestEngine(t)

	if got := e.Respond("lapor pengeluaran makan budi 50 ribu"); got != "fake: expense recorded" {
		t.Fatalf("Respond() = %q, want collaborator confirmation", got)
	}
	if fns.expenseName != "Budi Santoso" || fns.category != "Makanan" || fns.amount != 50000 {
		t.Errorf("collaborator got (%q, %q, %v), want (Budi Santoso, Makanan, 50000)",
			fns.expenseName, fns.category, fns.amount)
	}
}

func TestSubmitExpenseMissingAmount(t *testing.T) {
	e, _, _ := newTestEngine(t)

	got := e.Respond("lapor pengeluaran makan budi")
	if got != "Berapa jumlah pengeluaran yang ingin dilaporkan?" {
		t.Errorf("Respond() = %q, want amount prompt", got)
	}
}

func TestLookupColleague(t *testing.T) {
	e, fns, _ := newTestEngine(t)

	if got := e.Respond("cari info rekan citra"); got != "fake: colleague card" {
		t.Fatalf("Respond() = %q, want collaborator line", got)
	}
	if fns.lookupName != "Citra Lestari" {
		t.Errorf("collaborator got %q, want Citra Lestari", fns.lookupName)
	}
}

func TestIsExit(t *testing.T) {
	for _, in := range []string{"keluar", "  EXIT ", "Quit"} {
		if !IsExit(in) {
			t.Errorf("IsExit(%q) = false, want true", in)
		}
	}
	for _, in := range []string{"berhenti", "keluarga", ""} {
		if IsExit(in) {
			t.Errorf("IsExit(%q) = true, want false", in)
		}
	}
}
