// Package viewing defines the typed session model for a streaming-service
// viewing-history export and the parsing and filtering steps that produce
// clean sessions from raw export rows.
package viewing

import (
	"time"
)

// ContentType classifies a playback session as a film or an episodic series
type ContentType int

const (
	// ContentTypeMovie represents a standalone film
	ContentTypeMovie ContentType = iota + 1
	// ContentTypeTVShow represents an episode of a series
	ContentTypeTVShow
)

// String returns the string representation of the content type
func (ct ContentType) String() string {
	switch ct {
	case ContentTypeMovie:
		return "Movie"
	case ContentTypeTVShow:
		return "TV Show"
	default:
		return "unknown"
	}
}

// IsValid checks if the content type is one of the known values
func (ct ContentType) IsValid() bool {
	return ct == ContentTypeMovie || ct == ContentTypeTVShow
}

// Weekday represents a day of the week with fixed ISO numbering,
// Monday=1 through Sunday=7. The numbering is locale-independent and is
// never derived from formatted day labels.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// String returns the English day name
func (w Weekday) String() string {
	switch w {
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	default:
		return "unknown"
	}
}

// IsValid checks if the weekday is within the ISO range
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// WeekdayOf converts a time.Time to the ISO weekday numbering.
// time.Weekday counts Sunday as 0; here Sunday is 7.
func WeekdayOf(t time.Time) Weekday {
	if wd := t.Weekday(); wd != time.Sunday {
		return Weekday(wd)
	}
	return Sunday
}

// Weekdays returns all weekdays in fixed Monday..Sunday order
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// RawRecord is one logged playback event exactly as read from the export,
// before any parsing. Line carries the source row number for diagnostics.
type RawRecord struct {
	Title            string
	SupplementalType string
	StartTime        string
	Duration         string
	Line             int
}

// Session is a cleaned playback event derived from one valid RawRecord.
// Sessions are created once and never mutated afterward.
type Session struct {
	Title           string      `json:"title"`
	ShowName        string      `json:"show_name"`
	ContentType     ContentType `json:"content_type"`
	StartTime       time.Time   `json:"start_time"`
	Date            time.Time   `json:"date"`             // calendar date, midnight UTC
	DurationMinutes float64     `json:"duration_minutes"`
}

// IsValid checks the session invariants: a parsed start time, a
// non-negative duration and a known content type
func (s Session) IsValid() bool {
	return !s.StartTime.IsZero() && s.DurationMinutes >= 0 && s.ContentType.IsValid()
}

// Weekday returns the ISO weekday of the session's calendar date
func (s Session) Weekday() Weekday {
	return WeekdayOf(s.Date)
}

// Hour returns the hour-of-day (0-23) of the stored start time.
// The stored timestamp is naive; no timezone conversion is applied.
func (s Session) Hour() int {
	return s.StartTime.Hour()
}
