package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

var (
	// ErrMalformed marks a snapshot that does not parse into the expected shape.
	ErrMalformed = errors.New("catalog: malformed section snapshot")
	// ErrNoRecords marks a structurally valid snapshot with zero sections, so
	// callers can message it apart from a parse failure.
	ErrNoRecords = errors.New("catalog: snapshot contains no sections")
)

type rawMeeting struct {
	Start     string
	End       string
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
	Room      string
	Building  string
	Kind      string `mapstructure:"type"`
}

type rawSection struct {
	CRN            string `mapstructure:"crn"`
	Subject        string
	Number         string
	Title          string
	Open           bool
	Capacity       int
	SeatsAvailable *int `mapstructure:"seatsAvailable"`
	Meetings       []rawMeeting
}

func (r rawSection) section() Section {
	seats := -1
	if r.SeatsAvailable != nil {
		seats = *r.SeatsAvailable
	}
	return Section{
		CRN:            r.CRN,
		Subject:        r.Subject,
		Number:         r.Number,
		Title:          r.Title,
		Open:           r.Open,
		Capacity:       r.Capacity,
		SeatsAvailable: seats,
		Meetings: lo.Map(r.Meetings, func(m rawMeeting, _ int) Meeting {
			return Meeting{
				Start:    m.Start,
				End:      m.End,
				Days:     [5]bool{m.Monday, m.Tuesday, m.Wednesday, m.Thursday, m.Friday},
				Room:     m.Room,
				Building: m.Building,
				Kind:     m.Kind,
			}
		}),
	}
}

// SectionsFromJSON decodes a section snapshot. The payload may be a bare array
// of sections or a wrapper object exposing them under "sections".
func SectionsFromJSON(data []byte) ([]Section, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var records any
	switch typed := payload.(type) {
	case []any:
		records = typed
	case map[string]any:
		records = typed["sections"]
	default:
		return nil, fmt.Errorf("%w: expected an array or a wrapper object", ErrMalformed)
	}

	var raw []rawSection
	if err := mapstructure.Decode(records, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(raw) == 0 {
		return nil, ErrNoRecords
	}

	return lo.Map(raw, func(r rawSection, _ int) Section { return r.section() }), nil
}

// SectionsFromFile reads and decodes a JSON snapshot file.
func SectionsFromFile(file string) ([]Section, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot file: %w", err)
	}
	return SectionsFromJSON(data)
}
