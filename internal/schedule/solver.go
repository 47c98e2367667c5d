package schedule

import "courseplan/internal/catalog"

// Assignment maps a title key to the one section chosen for it. Assignments
// are produced whole by the solver or changed one entry at a time by an
// explicit override, never partially constructed elsewhere.
type Assignment map[string]catalog.Section

// Solver assigns exactly one section per requested title such that no two
// assigned sections' blocks overlap in time.
type Solver interface {
	// Solve explores titles in the given order and each title's candidates in
	// indexer order, returning the first conflict-free complete assignment.
	// A nil assignment with a nil error means no combination is feasible.
	// Titles with an empty candidate list are skipped and appear in no
	// assignment entry, so infeasibility always means time incompatibility.
	Solve(titles []string, indexer Indexer) (Assignment, error)
}

func NewSolver() Solver {
	return &backtrackingSolver{}
}
