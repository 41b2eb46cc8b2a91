// Package hr is the business-function boundary of the assistant. The agent
// hands it fully extracted, validated entities and treats the returned text
// as opaque display copy; whether a mutation happened is never decided here.
package hr

import "time"

// Functions is the set of business operations the agent delegates to for
// user-facing confirmation and lookup text.
type Functions interface {
	ApplyForLeave(employeeName, leaveType string, start, end time.Time) string
	SchedulePerformanceReview(employeeName, reviewerName string, reviewDate time.Time) string
	CheckLeaveRequestStatus(employeeName string) string
	SubmitExpenseReport(employeeName, category string, amount float64) string
	LookupColleagueInfo(colleagueName string) string
}
