package extract

import "strings"

// keywordRule maps any of its trigger substrings to a label. Rules are
// evaluated in slice order, first match wins.
type keywordRule struct {
	keywords []string
	label    string
}

func matchRules(utterance string, rules []keywordRule, fallback string) string {
	lower := strings.ToLower(utterance)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return fallback
}

// Leave-type labels as they appear in leave_balances.csv.
const (
	LeaveSick      = "Sakit"
	LeaveAnnual    = "Tahunan"
	LeaveMaternity = "Cuti Melahirkan"
)

var leaveTypeRules = []keywordRule{
	{keywords: []string{"sakit", "illness"}, label: LeaveSick},
	{keywords: []string{"tahunan", "annual", "libur", "vacation"}, label: LeaveAnnual},
	{keywords: []string{"melahirkan", "maternity"}, label: LeaveMaternity},
}

// LeaveType maps the utterance to a leave-type label. This is a total
// function: with no keyword present it returns the annual type.
func LeaveType(utterance string) string {
	return matchRules(utterance, leaveTypeRules, LeaveAnnual)
}

var expenseCategoryRules = []keywordRule{
	{keywords: []string{"transport", "transportasi", "ongkos", "taksi", "grab"}, label: "Transportasi"},
	{keywords: []string{"makan", "food", "restoran", "lunch"}, label: "Makanan"},
	{keywords: []string{"hotel", "penginapan", "akomodasi"}, label: "Akomodasi"},
	{keywords: []string{"komunikasi", "telepon", "internet", "data"}, label: "Komunikasi"},
	{keywords: []string{"alat", "peralatan", "stationery", "kantor"}, label: "Peralatan Kantor"},
}

// ExpenseCategory maps the utterance to an expense category, defaulting to
// "Lain-lain" when nothing matches.
func ExpenseCategory(utterance string) string {
	return matchRules(utterance, expenseCategoryRules, "Lain-lain")
}
