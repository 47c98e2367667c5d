package schedule

import (
	"testing"

	"courseplan/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func block(day catalog.Weekday, start, end Minutes) Block {
	return Block{Day: day, Start: start, End: end}
}

func TestOverlaps(t *testing.T) {
	t.Run("touching endpoints do not collide", func(t *testing.T) {
		a := block(catalog.Monday, 900, 950)
		b := block(catalog.Monday, 950, 1000)

		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})

	t.Run("strict overlap on the same day collides", func(t *testing.T) {
		a := block(catalog.Monday, 900, 1000)
		b := block(catalog.Monday, 950, 1010)

		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("identical intervals on different days do not collide", func(t *testing.T) {
		a := block(catalog.Monday, 900, 1000)
		b := block(catalog.Tuesday, 900, 1000)

		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})

	t.Run("symmetry over a spread of intervals", func(t *testing.T) {
		blocks := []Block{
			block(catalog.Monday, 540, 590),
			block(catalog.Monday, 560, 620),
			block(catalog.Wednesday, 540, 590),
			block(catalog.Friday, 0, 1),
		}
		for _, a := range blocks {
			for _, b := range blocks {
				assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
			}
		}
	})
}

func TestBlocksOf(t *testing.T) {
	t.Run("one block per flagged weekday in meeting then day order", func(t *testing.T) {
		// Arrange
		section := catalog.Section{
			CRN:   "10001",
			Title: "Calculus I",
			Meetings: []catalog.Meeting{
				{
					Start: "0930",
					End:   "1045",
					Days:  [5]bool{true, false, true, false, true}, // M W F
					Room:  "101",
					Kind:  "Lecture",
				},
				{
					Start: "1400",
					End:   "1550",
					Days:  [5]bool{false, true, false, false, false}, // T
					Kind:  "Lab",
				},
			},
		}

		// Act
		blocks := BlocksOf(section)

		// Assert
		assert.Len(t, blocks, 4)
		assert.Equal(t, catalog.Monday, blocks[0].Day)
		assert.Equal(t, catalog.Wednesday, blocks[1].Day)
		assert.Equal(t, catalog.Friday, blocks[2].Day)
		assert.Equal(t, catalog.Tuesday, blocks[3].Day)
		for _, b := range blocks[:3] {
			assert.Equal(t, "10001", b.CRN)
			assert.Equal(t, "Calculus I", b.Title)
			assert.Equal(t, Minutes(9*60+30), b.Start)
			assert.Equal(t, Minutes(10*60+45), b.End)
			assert.Equal(t, "101", b.Room)
			assert.Equal(t, "Lecture", b.Kind)
		}
		assert.Equal(t, "Lab", blocks[3].Kind)
	})

	t.Run("meetings without parseable times contribute nothing", func(t *testing.T) {
		section := catalog.Section{
			CRN: "10002",
			Meetings: []catalog.Meeting{
				{Start: "TBA", End: "TBA", Days: [5]bool{true, true, true, true, true}},
				{Start: "0930", End: "", Days: [5]bool{true, false, false, false, false}},
			},
		}

		assert.Empty(t, BlocksOf(section))
	})

	t.Run("section without meetings yields no blocks", func(t *testing.T) {
		assert.Empty(t, BlocksOf(catalog.Section{CRN: "10003"}))
	})
}
