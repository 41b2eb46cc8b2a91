// Package intent classifies an utterance as a question or a command and
// routes it to a topic. Classification is a two-stage, order-sensitive
// keyword cascade: question words are checked before command verbs, and
// within each branch the first matching topic rule wins.
package intent

import (
	"regexp"
	"strings"
)

// Kind is the coarse classification of an utterance.
type Kind int

const (
	KindUnknown Kind = iota
	KindQuestion
	KindCommand
)

func (k Kind) String() string {
	switch k {
	case KindQuestion:
		return "question"
	case KindCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Topic identifies the handler an utterance routes to within its branch.
type Topic string

// Question topics, in cascade order.
const (
	TopicManager        Topic = "manager"
	TopicLeaveBalance   Topic = "leave-balance"
	TopicDepartment     Topic = "department"
	TopicJobTitle       Topic = "job-title"
	TopicEmployeeInfo   Topic = "employee-info"
	TopicEmployeeStatus Topic = "employee-status"
	TopicEmail          Topic = "email"
)

// Command topics, in cascade order.
const (
	TopicLeaveRequest      Topic = "leave-request"
	TopicPerformanceReview Topic = "performance-review"
	TopicLeaveStatusCheck  Topic = "leave-status-check"
	TopicExpenseReport     Topic = "expense-report"
	TopicColleagueLookup   Topic = "colleague-lookup"
)

var questionPattern = regexp.MustCompile(
	`(apa|siapa|berapa|kapan|dimana|bagaimana|apakah|bisa|boleh|mau tau|pengen tau|ingin tau|` +
		`tolong|bisa tolong|boleh tolong|mohon|tolong bantu|bisa bantu|boleh bantu)`)

var commandPattern = regexp.MustCompile(
	`(ajukan|buat|create|submit|kirim|lapor|report|jadwalkan|schedule|set|atur|` +
		`update|ubah|change|modify|hapus|delete|remove|batal|cancel|` +
		`proses|process|eksekusi|execute|jalankan|run|cek|info|informasi|data|detail|lihat|tampilkan|show|display)`)

// Classify decides whether an utterance is a question or a command. The
// question set is checked first, so input containing both a question word
// and a command verb is always a question.
func Classify(utterance string) Kind {
	lower := strings.ToLower(utterance)
	if questionPattern.MatchString(lower) {
		return KindQuestion
	}
	if commandPattern.MatchString(lower) {
		return KindCommand
	}
	return KindUnknown
}

// Rule pairs trigger substrings with a topic. Rules live in exported
// slices so tests can enumerate every trigger phrase per branch.
type Rule struct {
	Keywords []string
	Topic    Topic
}

// QuestionRules is the ordered topic cascade for the question branch.
var QuestionRules = []Rule{
	{Keywords: []string{"manajer", "manager"}, Topic: TopicManager},
	{Keywords: []string{"sisa cuti", "cuti", "leave"}, Topic: TopicLeaveBalance},
	{Keywords: []string{"departemen", "department", "divisi", "bagian"}, Topic: TopicDepartment},
	{Keywords: []string{"jabatan", "posisi", "role", "job"}, Topic: TopicJobTitle},
	{Keywords: []string{"info", "informasi", "data", "detail"}, Topic: TopicEmployeeInfo},
	{Keywords: []string{"status", "keadaan"}, Topic: TopicEmployeeStatus},
	{Keywords: []string{"email", "kontak"}, Topic: TopicEmail},
}

// CommandRules is the ordered topic cascade for the command branch.
var CommandRules = []Rule{
	{Keywords: []string{"ajukan cuti", "minta cuti"}, Topic: TopicLeaveRequest},
	{Keywords: []string{"review performa", "review", "jadwalkan review", "performance"}, Topic: TopicPerformanceReview},
	{Keywords: []string{"cek status", "status cuti", "check status"}, Topic: TopicLeaveStatusCheck},
	{Keywords: []string{"lapor pengeluaran", "expense", "pengeluaran", "reimburse"}, Topic: TopicExpenseReport},
	{Keywords: []string{"cari info", "info rekan", "lookup", "colleague"}, Topic: TopicColleagueLookup},
}

// TopicOf runs an utterance down a rule cascade. ok is false when no rule
// matches, in which case the caller replies with the branch help text.
func TopicOf(utterance string, rules []Rule) (Topic, bool) {
	lower := strings.ToLower(utterance)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Topic, true
			}
		}
	}
	return "", false
}
