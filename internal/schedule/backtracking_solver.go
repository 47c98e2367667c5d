package schedule

import (
	"fmt"

	"github.com/samber/lo"
)

type backtrackingSolver struct{}

func (s *backtrackingSolver) Solve(titles []string, indexer Indexer) (Assignment, error) {
	seen := make(map[string]bool, len(titles))
	for _, title := range titles {
		if seen[title] {
			return nil, fmt.Errorf("title %q requested more than once", title)
		}
		seen[title] = true
	}

	pending := lo.Filter(titles, func(title string, _ int) bool {
		return len(indexer.Candidates(title)) > 0
	})

	assignment := make(Assignment, len(pending))
	if !place(pending, 0, indexer, nil, assignment) {
		return nil, nil
	}
	return assignment, nil
}

// place tries each candidate of titles[position] against the blocks placed so
// far and recurses on the remaining suffix. The first complete placement wins;
// a failed suffix undoes the entry and moves to the next candidate.
func place(titles []string, position int, indexer Indexer, placed []Block, assignment Assignment) bool {
	if position >= len(titles) {
		return true
	}

	title := titles[position]
	for _, candidate := range indexer.Candidates(title) {
		blocks := BlocksOf(candidate)
		if !compatible(placed, blocks) {
			continue
		}

		assignment[title] = candidate
		if place(titles, position+1, indexer, append(placed, blocks...), assignment) {
			return true
		}
		delete(assignment, title)
	}
	return false
}
