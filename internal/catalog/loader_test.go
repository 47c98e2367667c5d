package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleSnapshot = `[
	{
		"crn": "10001",
		"subject": "CS",
		"number": "101",
		"title": "Intro to Programming",
		"open": true,
		"capacity": 30,
		"seatsAvailable": 12,
		"meetings": [
			{
				"start": "0930",
				"end": "1045",
				"monday": true,
				"wednesday": true,
				"friday": true,
				"room": "101",
				"building": "Science Hall",
				"type": "Lecture"
			}
		]
	},
	{
		"crn": "10002",
		"subject": "MATH",
		"number": "151",
		"title": "Calculus I",
		"open": false,
		"capacity": 25,
		"meetings": []
	}
]`

func TestSectionsFromJSON(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		// Act
		sections, err := SectionsFromJSON([]byte(sampleSnapshot))

		// Assert
		assert.Nil(t, err)
		assert.Len(t, sections, 2)

		first := sections[0]
		assert.Equal(t, "10001", first.CRN)
		assert.Equal(t, "CS101", first.Code())
		assert.Equal(t, "CS101 Intro to Programming", first.TitleKey())
		assert.True(t, first.Open)
		assert.Equal(t, 12, first.SeatsAvailable)
		assert.Len(t, first.Meetings, 1)
		assert.Equal(t, [5]bool{true, false, true, false, true}, first.Meetings[0].Days)
		assert.Equal(t, "Lecture", first.Meetings[0].Kind)
	})

	t.Run("wrapper object", func(t *testing.T) {
		sections, err := SectionsFromJSON([]byte(`{"sections": ` + sampleSnapshot + `}`))

		assert.Nil(t, err)
		assert.Len(t, sections, 2)
	})

	t.Run("missing seat count defaults to -1", func(t *testing.T) {
		sections, err := SectionsFromJSON([]byte(sampleSnapshot))

		assert.Nil(t, err)
		assert.Equal(t, -1, sections[1].SeatsAvailable)
	})

	t.Run("empty snapshot is a distinct no-records failure", func(t *testing.T) {
		for _, payload := range []string{`[]`, `{"sections": []}`} {
			_, err := SectionsFromJSON([]byte(payload))
			assert.ErrorIs(t, err, ErrNoRecords, payload)
		}
	})

	t.Run("malformed payloads are rejected", func(t *testing.T) {
		for _, payload := range []string{``, `{{`, `"just a string"`, `42`} {
			_, err := SectionsFromJSON([]byte(payload))
			assert.ErrorIs(t, err, ErrMalformed, payload)
		}
	})
}

func TestNormalizeCode(t *testing.T) {
	cases := map[string]string{
		" cs 101 ":  "CS101",
		"CS101":     "CS101",
		"math\t151": "MATH151",
		"":          "",
	}
	for raw, expected := range cases {
		assert.Equal(t, expected, NormalizeCode(raw))
	}
}
