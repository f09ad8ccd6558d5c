package viewing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayOf(t *testing.T) {
	// 2024-01-01 was a Monday; the week that follows covers all seven values
	tests := []struct {
		name string
		date time.Time
		want Weekday
	}{
		{"monday", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Monday},
		{"tuesday", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Tuesday},
		{"wednesday", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Wednesday},
		{"thursday", time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), Thursday},
		{"friday", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Friday},
		{"saturday", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), Saturday},
		{"sunday maps to seven", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekdayOf(tt.date)

			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestWeekdayNumbering(t *testing.T) {
	assert.Equal(t, 1, int(Monday))
	assert.Equal(t, 7, int(Sunday))

	days := Weekdays()
	assert.Len(t, days, 7)
	for i, day := range days {
		assert.Equal(t, Weekday(i+1), day)
	}
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, "unknown", Weekday(0).String())
	assert.Equal(t, "unknown", Weekday(8).String())
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "Movie", ContentTypeMovie.String())
	assert.Equal(t, "TV Show", ContentTypeTVShow.String())
	assert.Equal(t, "unknown", ContentType(0).String())

	assert.True(t, ContentTypeMovie.IsValid())
	assert.True(t, ContentTypeTVShow.IsValid())
	assert.False(t, ContentType(0).IsValid())
	assert.False(t, ContentType(3).IsValid())
}

func TestSessionIsValid(t *testing.T) {
	valid := Session{
		Title:           "Inception",
		ShowName:        "Inception",
		ContentType:     ContentTypeMovie,
		StartTime:       time.Date(2024, 1, 15, 21, 0, 0, 0, time.UTC),
		Date:            time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 148,
	}
	assert.True(t, valid.IsValid())

	zeroStart := valid
	zeroStart.StartTime = time.Time{}
	assert.False(t, zeroStart.IsValid())

	negativeDuration := valid
	negativeDuration.DurationMinutes = -1
	assert.False(t, negativeDuration.IsValid())

	unknownType := valid
	unknownType.ContentType = ContentType(0)
	assert.False(t, unknownType.IsValid())
}

func TestSessionDerivedFields(t *testing.T) {
	session := Session{
		StartTime: time.Date(2024, 1, 7, 23, 15, 0, 0, time.UTC),
		Date:      time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, Sunday, session.Weekday())
	assert.Equal(t, 23, session.Hour())
}
