package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// File names of the persisted tables inside the data directory.
const (
	EmployeesFile   = "employees.csv"
	BalancesFile    = "leave_balances.csv"
	RequestsFile    = "leave_requests.csv"
	ReviewsFile     = "performance_reviews.csv"
)

// ErrNotFound is returned when an employee or balance record does not exist.
var ErrNotFound = errors.New("record not found")

// PersistenceError wraps a failure to read or rewrite one of the backing tables.
type PersistenceError struct {
	File string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage error on %s: %v", e.File, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Employee is one decoded row of employees.csv.
type Employee struct {
	ID         string
	Name       string
	Email      string
	JobTitle   string
	Department string
	ManagerID  string // empty means no manager
	JoinDate   string
	Status     string
}

// employeeColumns is the minimum column count for a full employee row
// (status sits at index 7).
const employeeColumns = 8

// Store holds the in-memory indices over the employee and leave-balance
// tables. Employees are read-only after load; balances are kept in sync
// with the backing file by DeductBalance.
type Store struct {
	dir       string
	log       *zap.Logger
	employees []Employee
	byName    map[string]int
	byID      map[string]int
	balances  map[string]map[string]int // employee id -> leave type -> days
}

// Open loads employees.csv and leave_balances.csv from dir. Rows with too
// few columns or unparseable balances are skipped with a warning; a missing
// or unreadable table is a hard error.
func Open(dir string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		dir:      dir,
		log:      log,
		byName:   make(map[string]int),
		byID:     make(map[string]int),
		balances: make(map[string]map[string]int),
	}
	if err := s.loadEmployees(); err != nil {
		return nil, err
	}
	if err := s.loadBalances(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) loadEmployees() error {
	rows, err := readTable(s.path(EmployeesFile))
	if err != nil {
		return &PersistenceError{File: EmployeesFile, Err: err}
	}
	for i, cols := range rows {
		if len(cols) < employeeColumns {
			s.log.Warn("skipping short employee row",
				zap.Int("row", i+2), zap.Int("columns", len(cols)))
			continue
		}
		emp := Employee{
			ID:         strings.TrimSpace(cols[0]),
			Name:       strings.TrimSpace(cols[1]),
			Email:      strings.TrimSpace(cols[2]),
			JobTitle:   strings.TrimSpace(cols[3]),
			Department: strings.TrimSpace(cols[4]),
			ManagerID:  strings.TrimSpace(cols[5]),
			JoinDate:   strings.TrimSpace(cols[6]),
			Status:     strings.TrimSpace(cols[7]),
		}
		idx := len(s.employees)
		s.employees = append(s.employees, emp)
		s.byName[strings.ToLower(emp.Name)] = idx
		s.byID[emp.ID] = idx
	}
	s.log.Info("employee table loaded", zap.Int("employees", len(s.employees)))
	return nil
}

func (s *Store) loadBalances() error {
	rows, err := readTable(s.path(BalancesFile))
	if err != nil {
		return &PersistenceError{File: BalancesFile, Err: err}
	}
	count := 0
	for i, cols := range rows {
		if len(cols) < 3 {
			s.log.Warn("skipping short balance row", zap.Int("row", i+2))
			continue
		}
		empID := strings.TrimSpace(cols[0])
		leaveType := strings.TrimSpace(cols[1])
		days, err := strconv.Atoi(strings.TrimSpace(cols[2]))
		if err != nil {
			s.log.Warn("skipping balance row with bad day count",
				zap.Int("row", i+2), zap.String("value", cols[2]))
			continue
		}
		if s.balances[empID] == nil {
			s.balances[empID] = make(map[string]int)
		}
		s.balances[empID][leaveType] = days
		count++
	}
	s.log.Info("leave balance table loaded", zap.Int("rows", count))
	return nil
}

// readTable reads a CSV file and returns its data rows, header excluded.
func readTable(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}

// Employees returns the roster in file order. Callers must not depend on
// any other ordering; ties in name extraction are broken by this order.
func (s *Store) Employees() []Employee {
	out := make([]Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// FindEmployeeByName matches the trimmed full name case-insensitively.
func (s *Store) FindEmployeeByName(name string) (Employee, error) {
	idx, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Employee{}, ErrNotFound
	}
	return s.employees[idx], nil
}

// FindEmployeeByID matches the stable identifier exactly.
func (s *Store) FindEmployeeByID(id string) (Employee, error) {
	idx, ok := s.byID[id]
	if !ok {
		return Employee{}, ErrNotFound
	}
	return s.employees[idx], nil
}

// EmployeeNameByID resolves an identifier to a display name.
func (s *Store) EmployeeNameByID(id string) (string, error) {
	emp, err := s.FindEmployeeByID(id)
	if err != nil {
		return "", err
	}
	return emp.Name, nil
}

// BalancesFor returns a copy of the leave balances for the named employee,
// or nil when the employee is unknown or has no tracked balances.
func (s *Store) BalancesFor(name string) map[string]int {
	emp, err := s.FindEmployeeByName(name)
	if err != nil {
		return nil
	}
	rows, ok := s.balances[emp.ID]
	if !ok || len(rows) == 0 {
		return nil
	}
	out := make(map[string]int, len(rows))
	for k, v := range rows {
		out[k] = v
	}
	return out
}

// Balance returns the remaining days for one (employee id, leave type) pair.
func (s *Store) Balance(empID, leaveType string) (int, bool) {
	rows, ok := s.balances[empID]
	if !ok {
		return 0, false
	}
	for k, v := range rows {
		if strings.EqualFold(k, leaveType) {
			return v, true
		}
	}
	return 0, false
}
