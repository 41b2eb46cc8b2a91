package agent

import "fmt"

// userFacing errors carry the exact reply shown to the user. The branch
// boundary in Respond unwraps them; anything else becomes the generic
// processing-error line for that handler.
type userFacing interface {
	UserMessage() string
}

// UnresolvedEntityError means a required entity (subject, dates, amount)
// could not be extracted. The user is reprompted and no state changes.
type UnresolvedEntityError struct {
	Entity string
	Prompt string
}

func (e *UnresolvedEntityError) Error() string       { return "unresolved entity: " + e.Entity }
func (e *UnresolvedEntityError) UserMessage() string { return e.Prompt }

// NotFoundError means an employee or balance record is absent.
type NotFoundError struct {
	Name    string
	Message string
}

func (e *NotFoundError) Error() string       { return fmt.Sprintf("record for %q not found", e.Name) }
func (e *NotFoundError) UserMessage() string { return e.Message }

// PersistenceFailureError hides the underlying storage failure behind a
// fixed reply; partially-applied mutations are never committed to memory.
type PersistenceFailureError struct {
	Message string
	Err     error
}

func (e *PersistenceFailureError) Error() string       { return e.Message }
func (e *PersistenceFailureError) Unwrap() error       { return e.Err }
func (e *PersistenceFailureError) UserMessage() string { return e.Message }

// InsufficientBalanceError rejects a leave request that exceeds the
// remaining balance for that leave type.
type InsufficientBalanceError struct {
	Employee  string
	LeaveType string
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance for %s", e.LeaveType, e.Employee)
}

func (e *InsufficientBalanceError) UserMessage() string {
	return fmt.Sprintf("Sisa cuti %s untuk %s sudah habis atau tidak cukup.", e.LeaveType, e.Employee)
}
