package schedule

import (
	"cmp"
	"math"
	"slices"

	"courseplan/internal/catalog"

	"github.com/samber/lo"
)

// noBlocksStart ranks a section without placed blocks after every real start.
const noBlocksStart = Minutes(math.MaxInt32)

type titleIndexer struct {
	titles     []string
	candidates map[string][]catalog.Section
}

func newTitleIndexer(sections []catalog.Section, includeClosed bool) *titleIndexer {
	indexer := &titleIndexer{candidates: make(map[string][]catalog.Section)}

	eligible := lo.Filter(sections, func(section catalog.Section, _ int) bool {
		return includeClosed || section.Open
	})
	for _, section := range eligible {
		key := section.TitleKey()
		indexer.candidates[key] = append(indexer.candidates[key], section)
	}

	indexer.titles = lo.Keys(indexer.candidates)
	slices.Sort(indexer.titles)
	for _, candidates := range indexer.candidates {
		slices.SortStableFunc(candidates, compareCandidates)
	}
	return indexer
}

// compareCandidates is the total order the solver explores: open before
// closed, then seats descending (missing counts sort as -1), then earliest
// block start ascending. The order is a heuristic for reaching a good first
// feasible assignment, not an optimality guarantee.
func compareCandidates(a, b catalog.Section) int {
	if a.Open != b.Open {
		if a.Open {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(b.SeatsAvailable, a.SeatsAvailable); c != 0 {
		return c
	}
	return cmp.Compare(earliestStart(a), earliestStart(b))
}

func earliestStart(section catalog.Section) Minutes {
	blocks := BlocksOf(section)
	if len(blocks) == 0 {
		return noBlocksStart
	}
	earliest := lo.MinBy(blocks, func(a, b Block) bool { return a.Start < b.Start })
	return earliest.Start
}

func (i *titleIndexer) Titles() []string {
	return i.titles
}

func (i *titleIndexer) Candidates(titleKey string) []catalog.Section {
	return i.candidates[titleKey]
}
