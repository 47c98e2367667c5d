package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	t.Run("compact four digit times", func(t *testing.T) {
		// Arrange
		cases := map[string]Minutes{
			"0000": 0,
			"0930": 9*60 + 30,
			"930":  9*60 + 30,
			"1415": 14*60 + 15,
			"2359": 23*60 + 59,
		}

		for raw, expected := range cases {
			// Act
			minutes, ok := ParseClock(raw)

			// Assert
			assert.True(t, ok, raw)
			assert.Equal(t, expected, minutes, raw)
		}
	})

	t.Run("absent, short and non-numeric input is rejected", func(t *testing.T) {
		for _, raw := range []string{"", "9", "30", "TBA", "9a30", "09 3"} {
			_, ok := ParseClock(raw)
			assert.False(t, ok, raw)
		}
	})
}

func TestFormatClock(t *testing.T) {
	// Arrange
	cases := map[Minutes]string{
		0:          "12:00am",
		9*60 + 30:  "9:30am",
		12 * 60:    "12:00pm",
		14*60 + 15: "2:15pm",
		23*60 + 59: "11:59pm",
	}

	for minutes, expected := range cases {
		// Act + Assert
		assert.Equal(t, expected, FormatClock(minutes))
	}

	assert.Equal(t, "", FormatClock(-1))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, raw := range []string{"0800", "1030", "1245", "1700"} {
		minutes, ok := ParseClock(raw)
		assert.True(t, ok)
		assert.NotEmpty(t, FormatClock(minutes))
	}
}
