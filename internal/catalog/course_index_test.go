package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func indexSnapshot() []Section {
	return []Section{
		{CRN: "10001", Subject: "CS", Number: "101", Title: "Intro to Programming", Open: true},
		{CRN: "10002", Subject: "CS", Number: "101", Title: "Intro to Programming", Open: false},
		{CRN: "10003", Subject: "MATH", Number: "151", Title: "Calculus I", Open: false},
	}
}

func TestBuildCourseIndex(t *testing.T) {
	// Act
	index := BuildCourseIndex(indexSnapshot())

	// Assert
	assert.Len(t, index, 2)
	assert.Equal(t, CourseInfo{
		DisplayTitle: "Intro to Programming",
		TitleKey:     "CS101 Intro to Programming",
		TotalCount:   2,
		OpenCount:    1,
	}, index["CS101"])
	assert.Equal(t, 0, index["MATH151"].OpenCount)
}

func TestOfferedAndSelectable(t *testing.T) {
	index := BuildCourseIndex(indexSnapshot())

	t.Run("offered accepts unnormalized codes", func(t *testing.T) {
		assert.True(t, index.Offered(" cs 101 "))
		assert.False(t, index.Offered("ART999"))
	})

	t.Run("selectable honors the open filter", func(t *testing.T) {
		assert.True(t, index.Selectable("CS101", false))
		assert.False(t, index.Selectable("MATH151", false))
		assert.True(t, index.Selectable("MATH151", true))
		assert.False(t, index.Selectable("ART999", true))
	})
}
