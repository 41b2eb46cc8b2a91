package agent

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xtreme16/asri/internal/extract"
	"github.com/xtreme16/asri/internal/intent"
	"github.com/xtreme16/asri/internal/store"
)

// Row status labels written by the action handlers.
const (
	statusPending   = "Menunggu Persetujuan"
	statusScheduled = "Terjadwal"
)

// sentinelReviewerID is written when the reviewer cannot be resolved to a
// roster entry.
const sentinelReviewerID = "999"

const defaultReviewerName = "Manager"

// runCommand routes a command utterance to its action handler. Each
// handler validates the extracted entities, applies its side effects, and
// only then delegates to the collaborator for the confirmation text.
func (e *Engine) runCommand(utterance string) string {
	topic, ok := intent.TopicOf(utterance, intent.CommandRules)
	if !ok {
		return commandHelpText
	}

	switch topic {
	case intent.TopicLeaveRequest:
		text, err := e.submitLeaveRequest(utterance)
		return e.reply(text, err, "Gagal memproses pengajuan cuti: ")
	case intent.TopicPerformanceReview:
		text, err := e.scheduleReview(utterance)
		return e.reply(text, err, "Gagal menjadwalkan review performa: ")
	case intent.TopicLeaveStatusCheck:
		text, err := e.checkLeaveStatus(utterance)
		return e.reply(text, err, "Gagal mengecek status cuti: ")
	case intent.TopicExpenseReport:
		text, err := e.submitExpense(utterance)
		return e.reply(text, err, "Gagal memproses laporan pengeluaran: ")
	case intent.TopicColleagueLookup:
		text, err := e.lookupColleague(utterance)
		return e.reply(text, err, "Gagal mencari informasi rekan kerja: ")
	default:
		return commandHelpText
	}
}

// submitLeaveRequest walks the leave-request state machine: subject →
// leave type → dates → balance check → persist → confirm. The request row
// is appended before the balance deduction; a persistence failure on
// either step aborts without touching the in-memory balance map.
func (e *Engine) submitLeaveRequest(utterance string) (string, error) {
	emp, ok := extract.Name(utterance, e.store.Employees())
	if !ok {
		return "", &UnresolvedEntityError{Entity: "subject", Prompt: "Siapa yang ingin mengajukan cuti?"}
	}
	display := extract.Capitalize(emp.Name)

	leaveType := extract.LeaveType(utterance)

	start, end := extract.DateRange(utterance, e.now())
	if start.IsZero() || end.IsZero() {
		return "", &UnresolvedEntityError{Entity: "dates",
			Prompt: "Kapan tanggal cuti yang diinginkan? (contoh: dari 1-5 januari)"}
	}

	// A same-day request still counts as one day.
	days := int(end.Sub(start) / (24 * time.Hour))
	if days <= 0 {
		days = 1
	}

	balance, tracked := e.store.Balance(emp.ID, leaveType)
	if !tracked {
		return "", &NotFoundError{Name: emp.Name,
			Message: "Data sisa cuti untuk " + display + " tidak ditemukan."}
	}
	if balance < days {
		return "", &InsufficientBalanceError{Employee: display, LeaveType: leaveType}
	}

	if _, err := e.store.FindEmployeeByID(emp.ID); err != nil {
		return "", &NotFoundError{Name: emp.Name,
			Message: "Karyawan " + display + " tidak ditemukan."}
	}

	id, err := e.store.NextLeaveRequestID()
	if err != nil {
		return "", err
	}
	req := store.LeaveRequest{
		ID:         id,
		EmployeeID: emp.ID,
		LeaveType:  leaveType,
		Start:      start,
		End:        end,
		Status:     statusPending,
	}
	if err := e.store.AppendLeaveRequest(req); err != nil {
		return "", e.persistFailure(err)
	}
	if err := e.store.DeductBalance(emp.ID, leaveType, days); err != nil {
		return "", e.persistFailure(err)
	}

	e.log.Info("leave request submitted",
		zap.String("id", id),
		zap.String("employee", emp.ID),
		zap.String("type", leaveType),
		zap.Int("days", days))
	return e.fns.ApplyForLeave(display, leaveType, start, end), nil
}

// persistFailure converts a storage error into its user-facing line while
// keeping everything else on the generic path.
func (e *Engine) persistFailure(err error) error {
	var pe *store.PersistenceError
	if errors.As(err, &pe) {
		e.log.Error("leave request persistence failed", zap.Error(err))
		return &PersistenceFailureError{Message: "Terjadi error saat menyimpan pengajuan cuti.", Err: err}
	}
	return err
}

// scheduleReview appends a scheduled performance-review row. The subject
// must resolve; the reviewer falls back to "Manager" and, when absent from
// the roster, to the sentinel reviewer id.
func (e *Engine) scheduleReview(utterance string) (string, error) {
	emp, ok := extract.EarliestName(utterance, e.store.Employees())
	if !ok {
		return "", &UnresolvedEntityError{Entity: "subject", Prompt: "Siapa yang akan direview?"}
	}
	display := extract.Capitalize(emp.Name)

	reviewerName := extract.Reviewer(utterance)
	if reviewerName == "" {
		reviewerName = defaultReviewerName
	}

	reviewerID := sentinelReviewerID
	if reviewer, err := e.store.FindEmployeeByName(reviewerName); err == nil {
		reviewerID = reviewer.ID
	}

	reviewDate, ok := extract.SingleDate(utterance, e.now())
	if !ok {
		reviewDate = e.now().AddDate(0, 0, 7)
	}

	id, err := e.store.NextReviewID()
	if err != nil {
		return "", err
	}
	rev := store.Review{
		ID:         id,
		EmployeeID: emp.ID,
		ReviewerID: reviewerID,
		Date:       reviewDate,
		Score:      0,
		Status:     statusScheduled,
	}
	if err := e.store.AppendReview(rev); err != nil {
		return "", err
	}

	e.log.Info("performance review scheduled",
		zap.String("id", id),
		zap.String("employee", emp.ID),
		zap.String("reviewer", reviewerID))
	return e.fns.SchedulePerformanceReview(display, extract.Capitalize(reviewerName), reviewDate), nil
}

func (e *Engine) checkLeaveStatus(utterance string) (string, error) {
	emp, ok := extract.Name(utterance, e.store.Employees())
	if !ok {
		return "", &UnresolvedEntityError{Entity: "subject", Prompt: "Siapa yang ingin dicek status cutinya?"}
	}
	return e.fns.CheckLeaveRequestStatus(extract.Capitalize(emp.Name)), nil
}

func (e *Engine) submitExpense(utterance string) (string, error) {
	emp, ok := extract.Name(utterance, e.store.Employees())
	if !ok {
		return "", &UnresolvedEntityError{Entity: "subject", Prompt: "Siapa yang melaporkan pengeluaran?"}
	}

	category := extract.ExpenseCategory(utterance)
	amount := extract.Amount(utterance)
	if amount <= 0 {
		return "", &UnresolvedEntityError{Entity: "amount",
			Prompt: "Berapa jumlah pengeluaran yang ingin dilaporkan?"}
	}

	return e.fns.SubmitExpenseReport(extract.Capitalize(emp.Name), category, amount), nil
}

func (e *Engine) lookupColleague(utterance string) (string, error) {
	emp, ok := extract.Name(utterance, e.store.Employees())
	if !ok {
		return "", &UnresolvedEntityError{Entity: "subject", Prompt: "Informasi siapa yang ingin dicari?"}
	}
	return e.fns.LookupColleagueInfo(extract.Capitalize(emp.Name)), nil
}
