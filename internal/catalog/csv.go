package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// csvRow is one meeting line of a spreadsheet export. Rows sharing a CRN
// describe the same section and are merged in first-seen order.
type csvRow struct {
	CRN      string `csv:"CRN"`
	Subject  string `csv:"Subject"`
	Number   string `csv:"Number"`
	Title    string `csv:"Title"`
	Open     string `csv:"Open"`
	Capacity int    `csv:"Capacity"`
	Seats    string `csv:"Seats"`
	Start    string `csv:"Start"`
	End      string `csv:"End"`
	Days     string `csv:"Days"`
	Room     string `csv:"Room"`
	Building string `csv:"Building"`
	Kind     string `csv:"Type"`
}

// SectionsFromCSV decodes a section snapshot from a CSV export. Day letters
// follow the registrar convention M, T, W, R, F.
func SectionsFromCSV(in io.Reader, delim rune) ([]Section, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	rows := []*csvRow{}
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}

	order := make([]string, 0, len(rows))
	byCRN := make(map[string]*Section)
	for _, row := range rows {
		section, ok := byCRN[row.CRN]
		if !ok {
			section = &Section{
				CRN:            row.CRN,
				Subject:        row.Subject,
				Number:         row.Number,
				Title:          row.Title,
				Open:           parseOpen(row.Open),
				Capacity:       row.Capacity,
				SeatsAvailable: parseSeats(row.Seats),
			}
			byCRN[row.CRN] = section
			order = append(order, row.CRN)
		}
		section.Meetings = append(section.Meetings, Meeting{
			Start:    row.Start,
			End:      row.End,
			Days:     parseDayLetters(row.Days),
			Room:     row.Room,
			Building: row.Building,
			Kind:     row.Kind,
		})
	}

	sections := make([]Section, 0, len(order))
	for _, crn := range order {
		sections = append(sections, *byCRN[crn])
	}
	return sections, nil
}

// SectionsFromCSVFile reads and decodes a CSV snapshot file.
func SectionsFromCSVFile(file string, delim rune) ([]Section, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot file: %w", err)
	}
	defer f.Close()
	return SectionsFromCSV(f, delim)
}

func parseOpen(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "true", "open", "1":
		return true
	}
	return false
}

func parseSeats(value string) int {
	seats, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return -1
	}
	return seats
}

func parseDayLetters(letters string) [5]bool {
	var days [5]bool
	for _, letter := range strings.ToUpper(letters) {
		switch letter {
		case 'M':
			days[Monday] = true
		case 'T':
			days[Tuesday] = true
		case 'W':
			days[Wednesday] = true
		case 'R':
			days[Thursday] = true
		case 'F':
			days[Friday] = true
		}
	}
	return days
}
