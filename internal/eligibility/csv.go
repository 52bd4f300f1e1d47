package eligibility

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// birthKeyLabel is the column-name fragment identifying birth-date
// columns in source spreadsheets.
const birthKeyLabel = "생년월일"

// specialKeywords are the category names whose lone submission triggers
// the statement-check verdict. The simplified form is listed first so a
// header containing it does not also count as the plain form.
var specialKeywords = []string{"기타소득(간이)", "기타소득", "연금계좌"}

var (
	sixDigits  = regexp.MustCompile(`^\d{6}$`)
	headerYear = regexp.MustCompile(`20\d{2}`)
)

// Table is a loaded flag spreadsheet.
type Table struct {
	Header []string
	Rows   [][]string

	birthCol int
	yearCols map[int]int // year -> column index
}

// LoadCSV reads a flag table from the CSV file at path. The first row is
// the header. Short rows are tolerated (missing cells read as empty).
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open flag table: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads a flag table from r.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse flag table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("flag table is empty")
	}

	t := &Table{Header: rows[0], Rows: rows[1:], yearCols: make(map[int]int)}
	t.birthCol = guessBirthColumn(t.Header, t.Rows)
	for i, name := range t.Header {
		if m := headerYear.FindString(name); m != "" {
			// Last column per year wins when a year appears more than once.
			t.yearCols[atoi(m)] = i
		}
	}
	return t, nil
}

// Years returns the years found in the header, ascending.
func (t *Table) Years() []int {
	out := make([]int, 0, len(t.yearCols))
	for y := range t.yearCols {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// FindRow returns the first row whose birth column equals birth6
// (6-digit YYMMDD), or nil when no row matches.
func (t *Table) FindRow(birth6 string) []string {
	for _, row := range t.Rows {
		if t.cell(row, t.birthCol) == strings.TrimSpace(birth6) {
			return row
		}
	}
	return nil
}

// Evaluate builds the decision input for one row over the selected
// years and applies the decision table. reportable comes from the
// caller; the report-liability rule lives outside this tool.
func (t *Table) Evaluate(row []string, years []int, reportable bool) (Input, Verdict) {
	in := Input{
		Reportable:  reportable,
		Submissions: make(map[int]bool, len(years)),
	}
	selected := make(map[int]bool, len(years))
	for _, y := range years {
		selected[y] = true
		if col, ok := t.yearCols[y]; ok {
			in.Submissions[y] = Truthy(t.cell(row, col))
		} else {
			in.Submissions[y] = false
		}
	}

	for i, name := range t.Header {
		m := headerYear.FindString(name)
		if m == "" || !selected[atoi(m)] {
			continue
		}
		for _, kw := range specialKeywords {
			if strings.Contains(name, kw) {
				if Truthy(t.cell(row, i)) {
					in.SpecialYCount++
				}
				break
			}
		}
	}
	return in, Decide(in)
}

func (t *Table) cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// guessBirthColumn picks the birth-date column: among columns whose name
// contains the birth label, the one with the highest share of 6-digit
// values wins; with no labeled column, the first column is used.
func guessBirthColumn(header []string, rows [][]string) int {
	best, bestRatio := -1, -1.0
	for i, name := range header {
		if !strings.Contains(name, birthKeyLabel) {
			continue
		}
		matched := 0
		for _, row := range rows {
			if i < len(row) && sixDigits.MatchString(strings.TrimSpace(row[i])) {
				matched++
			}
		}
		ratio := 0.0
		if len(rows) > 0 {
			ratio = float64(matched) / float64(len(rows))
		}
		if ratio > bestRatio {
			best, bestRatio = i, ratio
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// atoi converts a regexp-matched digit run; the pattern guarantees it
// parses.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
