package schedule

import (
	"errors"

	"courseplan/internal/catalog"

	"github.com/samber/lo"
)

// ErrNothingToSchedule reports a solve request where no requested title has a
// candidate under the current filter. It is distinct from infeasibility, which
// only ever means time incompatibility.
var ErrNothingToSchedule = errors.New("schedule: no requested title has candidates")

// Session is one user's scheduling state: the active section snapshot, the
// open/closed filter, the candidate index derived from both, and the current
// assignment with its conflict set. Sessions replace the ambient state a UI
// would otherwise hold; each concurrent schedule gets its own Session and no
// state is shared across snapshot replacements.
type Session struct {
	sections      []catalog.Section
	includeClosed bool
	indexer       Indexer
	solver        Solver
	assignment    Assignment
	conflicts     map[string]bool
}

func NewSession() *Session {
	return &Session{
		solver:  NewSolver(),
		indexer: NewIndexer(nil, false),
	}
}

// SetSections replaces the active snapshot wholesale. Candidate lists, the
// assignment and the conflict set derived from the previous snapshot are
// invalidated.
func (s *Session) SetSections(sections []catalog.Section) {
	s.sections = sections
	s.reindex()
}

// SetIncludeClosed switches the open/closed candidate filter, rebuilding the
// candidate lists when the flag actually changes.
func (s *Session) SetIncludeClosed(include bool) {
	if s.includeClosed == include {
		return
	}
	s.includeClosed = include
	s.reindex()
}

func (s *Session) reindex() {
	s.indexer = NewIndexer(s.sections, s.includeClosed)
	s.assignment = nil
	s.conflicts = nil
}

func (s *Session) IncludeClosed() bool {
	return s.includeClosed
}

func (s *Session) Titles() []string {
	return s.indexer.Titles()
}

func (s *Session) Candidates(titleKey string) []catalog.Section {
	return s.indexer.Candidates(titleKey)
}

// Solve computes a conflict-free assignment for the requested titles and
// stores it together with its (empty) conflict set. Titles without candidates
// are dropped before the search; when nothing survives the drop the request is
// reported as ErrNothingToSchedule. A nil assignment with a nil error means
// the surviving titles cannot be combined without a time conflict.
func (s *Session) Solve(titles []string) (Assignment, error) {
	schedulable := lo.Filter(titles, func(title string, _ int) bool {
		return len(s.indexer.Candidates(title)) > 0
	})
	if len(schedulable) == 0 {
		return nil, ErrNothingToSchedule
	}

	assignment, err := s.solver.Solve(schedulable, s.indexer)
	if err != nil {
		return nil, err
	}

	s.assignment = assignment
	if assignment == nil {
		s.conflicts = nil
		return nil, nil
	}
	s.conflicts = Conflicts(assignment)
	return assignment, nil
}

// Override replaces a single assignment entry with the section identified by
// crn, looked up among the title's candidates regardless of the open/closed
// filter. An unknown title or CRN leaves the assignment untouched and returns
// false. Overrides never backtrack: the conflicts they introduce are
// recomputed over the full assignment and surfaced, not rejected.
func (s *Session) Override(titleKey, crn string) bool {
	if s.assignment == nil {
		return false
	}
	if _, ok := s.assignment[titleKey]; !ok {
		return false
	}

	options := NewIndexer(s.sections, true).Candidates(titleKey)
	target, ok := lo.Find(options, func(section catalog.Section) bool {
		return section.CRN == crn
	})
	if !ok {
		return false
	}

	s.assignment[titleKey] = target
	s.conflicts = Conflicts(s.assignment)
	return true
}

func (s *Session) Assignment() Assignment {
	return s.assignment
}

func (s *Session) Conflicts() map[string]bool {
	return s.conflicts
}
