package hr

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CSVFunctions implements Functions against the persisted CSV tables in the
// data directory. It performs read-only lookups; all record mutation stays
// with the agent and its store.
type CSVFunctions struct {
	dir string
}

// NewCSVFunctions returns a Functions implementation over the tables in dir.
func NewCSVFunctions(dir string) *CSVFunctions {
	return &CSVFunctions{dir: dir}
}

func (f *CSVFunctions) ApplyForLeave(employeeName, leaveType string, start, end time.Time) string {
	return fmt.Sprintf(
		"KONFIRMASI: Pengajuan cuti untuk %s (jenis: %s) dari tanggal %s hingga %s telah dicatat.",
		employeeName, leaveType, FormatDate(start), FormatDate(end))
}

func (f *CSVFunctions) SchedulePerformanceReview(employeeName, reviewerName string, reviewDate time.Time) string {
	return fmt.Sprintf(
		"KONFIRMASI: Sesi review performa untuk %s dengan %s telah dijadwalkan pada %s.",
		employeeName, reviewerName, FormatDateWithWeekday(reviewDate))
}

// CheckLeaveRequestStatus scans leave_requests.csv and reports the status
// of the employee's most recent request.
func (f *CSVFunctions) CheckLeaveRequestStatus(employeeName string) string {
	rows, err := f.readTable("leave_requests.csv")
	if err != nil {
		return fmt.Sprintf("ERROR: Tidak dapat mengakses data status cuti untuk %s: %v",
			employeeName, err)
	}

	lastStatus := "Tidak ada pengajuan cuti"
	for _, cols := range rows {
		if len(cols) < 6 {
			continue
		}
		name, err := f.employeeNameByID(strings.TrimSpace(cols[1]))
		if err != nil {
			return fmt.Sprintf("ERROR: Tidak dapat mengakses data status cuti untuk %s: %v",
				employeeName, err)
		}
		if name != "" && strings.EqualFold(name, employeeName) {
			lastStatus = strings.TrimSpace(cols[5])
		}
	}

	return fmt.Sprintf("INFO: Status pengajuan cuti terakhir untuk %s adalah: %s.",
		employeeName, lastStatus)
}

func (f *CSVFunctions) SubmitExpenseReport(employeeName, category string, amount float64) string {
	return fmt.Sprintf(
		"KONFIRMASI: Laporan pengeluaran untuk %s sebesar %s (kategori: %s) telah diajukan untuk diproses.",
		employeeName, FormatRupiah(amount), category)
}

// LookupColleagueInfo scans employees.csv for the named colleague and
// formats their non-sensitive contact card.
func (f *CSVFunctions) LookupColleagueInfo(colleagueName string) string {
	rows, err := f.readTable("employees.csv")
	if err != nil {
		return fmt.Sprintf("ERROR: Tidak dapat mengakses data karyawan untuk %s: %v",
			colleagueName, err)
	}

	want := strings.TrimSpace(colleagueName)
	for _, cols := range rows {
		if len(cols) < 8 {
			continue
		}
		name := strings.TrimSpace(cols[1])
		if strings.EqualFold(name, want) {
			return fmt.Sprintf(
				"INFO: Informasi untuk %s:\n• Email: %s\n• Jabatan: %s\n• Departemen: %s\n• Status: %s",
				name,
				strings.TrimSpace(cols[2]),
				strings.TrimSpace(cols[3]),
				strings.TrimSpace(cols[4]),
				strings.TrimSpace(cols[7]))
		}
	}

	return fmt.Sprintf("INFO: Karyawan %s tidak ditemukan dalam database.", colleagueName)
}

func (f *CSVFunctions) employeeNameByID(id string) (string, error) {
	rows, err := f.readTable("employees.csv")
	if err != nil {
		return "", err
	}
	for _, cols := range rows {
		if len(cols) > 1 && strings.TrimSpace(cols[0]) == id {
			return strings.TrimSpace(cols[1]), nil
		}
	}
	return "", nil
}

func (f *CSVFunctions) readTable(name string) ([][]string, error) {
	file, err := os.Open(filepath.Join(f.dir, name))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
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
