package schedule

import "courseplan/internal/catalog"

// Indexer groups a section snapshot into per-title candidate lists and fixes
// the order in which the solver explores them. An indexer is a pure function
// of (snapshot, includeClosed): changing either means building a new one.
type Indexer interface {
	// Titles returns the distinct title keys of the snapshot in lexicographic
	// order.
	Titles() []string
	// Candidates returns the ranked candidate list for a title key: open
	// sections first, then more available seats, then earlier first block
	// start. The list is filtered to open sections unless the indexer was
	// built to include closed ones.
	Candidates(titleKey string) []catalog.Section
}

func NewIndexer(sections []catalog.Section, includeClosed bool) Indexer {
	return newTitleIndexer(sections, includeClosed)
}
