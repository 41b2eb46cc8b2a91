package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LeaveRequest is one row of leave_requests.csv.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  string
	Start      time.Time
	End        time.Time
	Status     string
}

// Review is one row of performance_reviews.csv.
type Review struct {
	ID         string
	EmployeeID string
	ReviewerID string
	Date       time.Time
	Score      int
	Status     string
}

// DeductBalance subtracts days from the (empID, leaveType) balance, floored
// at zero. The backing file is rewritten first; the in-memory map is only
// updated once the rewrite succeeded, so a persistence failure leaves the
// cache untouched.
func (s *Store) DeductBalance(empID, leaveType string, days int) error {
	path := s.path(BalancesFile)
	f, err := os.Open(path)
	if err != nil {
		return &PersistenceError{File: BalancesFile, Err: err}
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	f.Close()
	if err != nil {
		return &PersistenceError{File: BalancesFile, Err: err}
	}

	updated := false
	var newBalance int
	for i := 1; i < len(records); i++ {
		cols := records[i]
		if len(cols) < 3 {
			continue
		}
		if strings.TrimSpace(cols[0]) == empID && strings.EqualFold(strings.TrimSpace(cols[1]), leaveType) {
			cur, err := strconv.Atoi(strings.TrimSpace(cols[2]))
			if err != nil {
				return &PersistenceError{File: BalancesFile,
					Err: fmt.Errorf("row %d has non-numeric balance %q", i+1, cols[2])}
			}
			newBalance = cur - days
			if newBalance < 0 {
				newBalance = 0
			}
			records[i][2] = strconv.Itoa(newBalance)
			updated = true
			break
		}
	}
	if !updated {
		return ErrNotFound
	}

	if err := writeTable(path, records); err != nil {
		return &PersistenceError{File: BalancesFile, Err: err}
	}

	if s.balances[empID] == nil {
		s.balances[empID] = make(map[string]int)
	}
	for k := range s.balances[empID] {
		if strings.EqualFold(k, leaveType) {
			s.balances[empID][k] = newBalance
			leaveType = k
			break
		}
	}
	s.balances[empID][leaveType] = newBalance

	s.log.Info("leave balance deducted",
		zap.String("employee", empID),
		zap.String("type", leaveType),
		zap.Int("days", days),
		zap.Int("remaining", newBalance))
	return nil
}

// NextLeaveRequestID derives the next "LR"-prefixed id from the last data
// row of leave_requests.csv, or LR001 when the table holds only a header.
func (s *Store) NextLeaveRequestID() (string, error) {
	return s.nextID(RequestsFile, "LR", 3)
}

// NextReviewID derives the next "PR"-prefixed id from the last data row of
// performance_reviews.csv, or PR01 when the table holds only a header.
func (s *Store) NextReviewID() (string, error) {
	return s.nextID(ReviewsFile, "PR", 2)
}

func (s *Store) nextID(file, prefix string, width int) (string, error) {
	f, err := os.Open(s.path(file))
	if err != nil {
		return "", &PersistenceError{File: file, Err: err}
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	f.Close()
	if err != nil {
		return "", &PersistenceError{File: file, Err: err}
	}

	first := fmt.Sprintf("%s%0*d", prefix, width, 1)
	if len(records) <= 1 {
		return first, nil
	}
	last := records[len(records)-1]
	if len(last) == 0 {
		return first, nil
	}
	lastID := strings.TrimSpace(last[0])
	if len(lastID) <= len(prefix) {
		return first, nil
	}
	n, err := strconv.Atoi(lastID[len(prefix):])
	if err != nil {
		return "", &PersistenceError{File: file,
			Err: fmt.Errorf("malformed id %q in last row", lastID)}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, n+1), nil
}

// AppendLeaveRequest appends one pending request row.
func (s *Store) AppendLeaveRequest(req LeaveRequest) error {
	row := []string{
		req.ID,
		req.EmployeeID,
		req.LeaveType,
		req.Start.Format(time.DateOnly),
		req.End.Format(time.DateOnly),
		req.Status,
	}
	if err := appendRow(s.path(RequestsFile), row); err != nil {
		return &PersistenceError{File: RequestsFile, Err: err}
	}
	s.log.Info("leave request appended",
		zap.String("id", req.ID), zap.String("employee", req.EmployeeID))
	return nil
}

// AppendReview appends one scheduled review row.
func (s *Store) AppendReview(rev Review) error {
	row := []string{
		rev.ID,
		rev.EmployeeID,
		rev.ReviewerID,
		rev.Date.Format(time.DateOnly),
		strconv.Itoa(rev.Score),
		rev.Status,
	}
	if err := appendRow(s.path(ReviewsFile), row); err != nil {
		return &PersistenceError{File: ReviewsFile, Err: err}
	}
	s.log.Info("performance review appended",
		zap.String("id", rev.ID), zap.String("employee", rev.EmployeeID))
	return nil
}

func writeTable(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func appendRow(path string, row []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
