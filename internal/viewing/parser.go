package viewing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// startTimeLayout is the fixed export timestamp format. Start times are
// UTC-naive; they are parsed without any location conversion.
const startTimeLayout = "2006-01-02 15:04:05"

// tvShowColonThreshold is the minimum number of colons in a title for it to
// classify as a series episode. Exactly one colon still classifies as a
// movie ("The Matrix: Reloaded").
const tvShowColonThreshold = 2

// ParseSession converts a single raw export row into a typed Session.
// A row whose start time or duration cannot be parsed is rejected with an
// error naming the field and source line; the caller decides whether the
// rejection is fatal (it is not, during filtering).
//
// Pure function: no side effects, no shared state.
func ParseSession(rec RawRecord) (Session, error) {
	start, err := time.Parse(startTimeLayout, strings.TrimSpace(rec.StartTime))
	if err != nil {
		return Session{}, fmt.Errorf("parse start time (line %d): %w", rec.Line, err)
	}

	minutes, err := ParseDurationMinutes(rec.Duration)
	if err != nil {
		return Session{}, fmt.Errorf("parse duration (line %d): %w", rec.Line, err)
	}

	title := strings.TrimSpace(rec.Title)
	contentType, showName := ClassifyTitle(title)

	return Session{
		Title:           title,
		ShowName:        showName,
		ContentType:     contentType,
		StartTime:       start,
		Date:            DateOf(start),
		DurationMinutes: minutes,
	}, nil
}

// ParseDurationMinutes converts an H:M:S duration string to fractional
// minutes: hours*60 + minutes + seconds/60. "01:30:00" yields 90.0 and
// "00:00:45" yields 0.75.
func ParseDurationMinutes(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed duration %q: expected H:M:S", s)
	}

	hours, err := parseDurationPart(parts[0], "hours", s)
	if err != nil {
		return 0, err
	}
	minutes, err := parseDurationPart(parts[1], "minutes", s)
	if err != nil {
		return 0, err
	}
	seconds, err := parseDurationPart(parts[2], "seconds", s)
	if err != nil {
		return 0, err
	}

	return float64(hours)*60 + float64(minutes) + float64(seconds)/60, nil
}

// parseDurationPart parses one H:M:S component as a non-negative integer
func parseDurationPart(part, name, full string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(part))
	if err != nil {
		return 0, fmt.Errorf("parse duration %s in %q: %w", name, full, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("negative duration %s in %q", name, full)
	}
	return value, nil
}

// ClassifyTitle infers the content type from the title's colon structure
// and extracts the show name.
//
// Series titles follow a "Show: Season: Episode" convention while film
// titles are flat names, optionally with a single subtitle colon. Two or
// more colons classify as TV show; zero or one classify as movie. The
// boundary is intentional and known to misclassify the occasional
// multi-colon film title; it must not be second-guessed.
//
// The show name is the substring before the first colon, space-trimmed;
// titles without a colon yield the whole title.
func ClassifyTitle(title string) (ContentType, string) {
	contentType := ContentTypeMovie
	if strings.Count(title, ":") >= tvShowColonThreshold {
		contentType = ContentTypeTVShow
	}

	showName := title
	if idx := strings.Index(title, ":"); idx >= 0 {
		showName = strings.TrimSpace(title[:idx])
	}

	return contentType, showName
}

// DateOf truncates a timestamp to its calendar date at midnight UTC
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
