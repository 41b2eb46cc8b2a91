package agent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xtreme16/asri/internal/extract"
	"github.com/xtreme16/asri/internal/intent"
	"github.com/xtreme16/asri/internal/store"
)

// answerQuestion routes a question utterance to its lookup handler. All
// lookups are read-only against the store.
func (e *Engine) answerQuestion(utterance string) string {
	topic, ok := intent.TopicOf(utterance, intent.QuestionRules)
	if !ok {
		return questionHelpText
	}

	switch topic {
	case intent.TopicManager:
		return e.withSubject(utterance, "Siapa yang ingin Anda tanyakan manajernya?", e.managerInfo)
	case intent.TopicLeaveBalance:
		return e.withSubject(utterance, "Siapa yang ingin Anda tanyakan sisa cutinya?", e.leaveBalanceInfo)
	case intent.TopicDepartment:
		return e.withSubject(utterance, "Departemen siapa yang ingin Anda tanyakan?", e.departmentInfo)
	case intent.TopicJobTitle:
		return e.withSubject(utterance, "Jabatan siapa yang ingin Anda tanyakan?", e.jobInfo)
	case intent.TopicEmployeeInfo:
		return e.withSubject(utterance, "Informasi siapa yang ingin dicari?", func(emp store.Employee) string {
			return e.fns.LookupColleagueInfo(extract.Capitalize(emp.Name))
		})
	case intent.TopicEmployeeStatus:
		return e.withSubject(utterance, "Status siapa yang ingin Anda tanyakan?", e.statusInfo)
	case intent.TopicEmail:
		return e.withSubject(utterance, "Email siapa yang ingin Anda tanyakan?", e.emailInfo)
	default:
		return questionHelpText
	}
}

// withSubject extracts the subject employee and either runs the lookup or
// prompts for a name.
func (e *Engine) withSubject(utterance, prompt string, lookup func(store.Employee) string) string {
	emp, ok := extract.Name(utterance, e.store.Employees())
	if !ok {
		return prompt
	}
	return lookup(emp)
}

func (e *Engine) managerInfo(emp store.Employee) string {
	display := extract.Capitalize(emp.Name)
	if emp.ManagerID == "" {
		return fmt.Sprintf("%s adalah direktur utama (tidak memiliki manajer).", display)
	}
	managerName, err := e.store.EmployeeNameByID(emp.ManagerID)
	if err != nil {
		return fmt.Sprintf("Data manajer untuk %s tidak ditemukan.", display)
	}
	return fmt.Sprintf("Manajer %s adalah %s.", display, managerName)
}

func (e *Engine) leaveBalanceInfo(emp store.Employee) string {
	display := extract.Capitalize(emp.Name)
	balances := e.store.BalancesFor(emp.Name)
	if len(balances) == 0 {
		return fmt.Sprintf("Data sisa cuti untuk %s tidak ditemukan.", display)
	}

	types := make([]string, 0, len(balances))
	for t := range balances {
		types = append(types, t)
	}
	sort.Strings(types)

	var b strings.Builder
	fmt.Fprintf(&b, "Sisa cuti %s:", display)
	for _, t := range types {
		fmt.Fprintf(&b, "\n- %s: %d hari", t, balances[t])
	}
	return b.String()
}

func (e *Engine) departmentInfo(emp store.Employee) string {
	return fmt.Sprintf("%s bekerja di departemen %s.", extract.Capitalize(emp.Name), emp.Department)
}

func (e *Engine) jobInfo(emp store.Employee) string {
	return fmt.Sprintf("%s memiliki jabatan %s.", extract.Capitalize(emp.Name), emp.JobTitle)
}

func (e *Engine) statusInfo(emp store.Employee) string {
	return fmt.Sprintf("Status %s adalah %s.", extract.Capitalize(emp.Name), emp.Status)
}

func (e *Engine) emailInfo(emp store.Employee) string {
	return fmt.Sprintf("Email %s adalah %s.", extract.Capitalize(emp.Name), emp.Email)
}
