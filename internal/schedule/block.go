package schedule

import (
	"courseplan/internal/catalog"

	"github.com/samber/lo"
)

// Block is one weekday-scoped time interval derived from a section meeting,
// carrying its owning section's identity and the meeting's display metadata.
// Blocks are rebuilt from the section on every use and never mutated.
type Block struct {
	Day      catalog.Weekday
	Start    Minutes
	End      Minutes
	CRN      string
	Title    string
	Room     string
	Building string
	Kind     string
}

// BlocksOf derives the weekly blocks of a section. Meetings without a
// parseable start or end time contribute nothing. Output order is meeting
// order, then Monday..Friday.
func BlocksOf(section catalog.Section) []Block {
	blocks := make([]Block, 0, len(section.Meetings))
	for _, meeting := range section.Meetings {
		start, ok := ParseClock(meeting.Start)
		if !ok {
			continue
		}
		end, ok := ParseClock(meeting.End)
		if !ok {
			continue
		}
		for _, day := range catalog.Weekdays {
			if !meeting.Days[day] {
				continue
			}
			blocks = append(blocks, Block{
				Day:      day,
				Start:    start,
				End:      end,
				CRN:      section.CRN,
				Title:    section.Title,
				Room:     meeting.Room,
				Building: meeting.Building,
				Kind:     meeting.Kind,
			})
		}
	}
	return blocks
}

// Overlaps reports whether two blocks collide: same day and strictly
// overlapping half-open intervals. Touching endpoints do not collide.
func (b Block) Overlaps(other Block) bool {
	return b.Day == other.Day && b.Start < other.End && other.Start < b.End
}

// compatible reports whether none of the candidate blocks collides with any
// already-placed block.
func compatible(placed, candidate []Block) bool {
	return !lo.SomeBy(candidate, func(block Block) bool {
		return lo.SomeBy(placed, func(existing Block) bool { return block.Overlaps(existing) })
	})
}
