package prereq

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

var (
	// ErrMalformed marks a curriculum document that does not parse into the
	// expected shape.
	ErrMalformed = errors.New("prereq: malformed curriculum document")
	// ErrNoPlans marks a structurally valid document with zero study plans.
	ErrNoPlans = errors.New("prereq: curriculum document contains no study plans")
)

// Course is one curriculum entry: a course code, its display name and the
// codes it requires.
type Course struct {
	Code          string
	Name          string
	Prerequisites []string
}

// Semester groups the courses of one term within a plan year.
type Semester struct {
	Name    string
	Courses []Course
}

// Year is one academic year of a study plan.
type Year struct {
	Name      string
	Semesters []Semester
}

// StudyPlan is one curriculum, identified by a specialization/degree/year
// triple, with nested year and semester course entries plus an optional flat
// elective list.
type StudyPlan struct {
	Specialization string
	Degree         string
	Year           string
	Years          []Year
	Electives      []Course
}

// Key identifies the plan within a curriculum document.
func (p StudyPlan) Key() string {
	return p.Specialization + "/" + p.Degree + "/" + p.Year
}

// AllCourses flattens every course entry of the plan, across all years and
// semesters plus the elective list.
func (p StudyPlan) AllCourses() []Course {
	courses := make([]Course, 0)
	for _, year := range p.Years {
		for _, semester := range year.Semesters {
			courses = append(courses, semester.Courses...)
		}
	}
	return append(courses, p.Electives...)
}

// PlansFromJSON decodes a curriculum document. The payload may be a bare array
// of study plans or a wrapper object exposing them under "plans".
func PlansFromJSON(data []byte) ([]StudyPlan, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var records any
	switch typed := payload.(type) {
	case []any:
		records = typed
	case map[string]any:
		records = typed["plans"]
	default:
		return nil, fmt.Errorf("%w: expected an array or a wrapper object", ErrMalformed)
	}

	var plans []StudyPlan
	if err := mapstructure.Decode(records, &plans); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(plans) == 0 {
		return nil, ErrNoPlans
	}
	return plans, nil
}

// PlansFromFile reads and decodes a curriculum document file.
func PlansFromFile(file string) ([]StudyPlan, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read curriculum file: %w", err)
	}
	return PlansFromJSON(data)
}

// FindPlan selects a plan by its specialization/degree/year triple.
func FindPlan(plans []StudyPlan, specialization, degree, year string) (StudyPlan, bool) {
	return lo.Find(plans, func(plan StudyPlan) bool {
		return plan.Specialization == specialization && plan.Degree == degree && plan.Year == year
	})
}
