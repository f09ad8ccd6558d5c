package viewing

import (
	"context"
	"log/slog"
	"strings"
)

// Supplemental video tags that represent non-primary content. Playback of
// these rows (previews, recaps, bonus material) never counts toward watch
// time. The set is compiled in; configuration may extend it but not shrink
// it.
var coreExcludedTags = []string{
	"HOOK",
	"TRAILER",
	"BONUS_VIDEO",
	"TEASER_TRAILER",
	"TUTORIAL",
	"RECAP",
}

// FilterConfig contains configuration for session filtering
type FilterConfig struct {
	// ExtraExcludedTags extends the built-in exclusion set with additional
	// supplemental-type tags. Matching is exact on the trimmed tag.
	ExtraExcludedTags []string
}

// Filter turns raw export rows into valid sessions, dropping non-content
// rows and rows that fail to parse
type Filter struct {
	logger   *slog.Logger
	excluded map[string]struct{}
}

// NewFilter creates a session filter with the given logger and config
func NewFilter(logger *slog.Logger, config FilterConfig) *Filter {
	if logger == nil {
		logger = slog.Default()
	}

	excluded := make(map[string]struct{}, len(coreExcludedTags)+len(config.ExtraExcludedTags))
	for _, tag := range coreExcludedTags {
		excluded[tag] = struct{}{}
	}
	for _, tag := range config.ExtraExcludedTags {
		if tag = strings.TrimSpace(tag); tag != "" {
			excluded[tag] = struct{}{}
		}
	}

	return &Filter{
		logger:   logger,
		excluded: excluded,
	}
}

// Filter converts raw records into the valid session set.
//
// Rows are dropped for two reasons: the supplemental-type tag is in the
// exclusion set, or the start time or duration fails to parse. Dropped rows
// are counted and summarized in a single log line rather than reported
// individually; per-row details go to debug. Input order is preserved in
// the output but carries no downstream meaning.
//
// Filtering is idempotent: sessions that survive one pass survive every
// subsequent pass unchanged.
func (f *Filter) Filter(ctx context.Context, records []RawRecord) []Session {
	sessions := make([]Session, 0, len(records))

	var droppedTag, droppedParse int
	for _, rec := range records {
		if f.IsExcluded(rec.SupplementalType) {
			droppedTag++
			f.logger.DebugContext(ctx, "dropped supplemental row",
				slog.String("tag", strings.TrimSpace(rec.SupplementalType)),
				slog.Int("line", rec.Line),
			)
			continue
		}

		session, err := ParseSession(rec)
		if err != nil {
			droppedParse++
			f.logger.DebugContext(ctx, "dropped unparseable row",
				slog.Int("line", rec.Line),
				slog.String("error", err.Error()),
			)
			continue
		}

		sessions = append(sessions, session)
	}

	f.logger.InfoContext(ctx, "session filtering completed",
		slog.Int("input_rows", len(records)),
		slog.Int("sessions", len(sessions)),
		slog.Int("dropped_supplemental", droppedTag),
		slog.Int("dropped_unparseable", droppedParse),
	)

	return sessions
}

// IsExcluded reports whether a supplemental-type tag is in the exclusion
// set. The empty tag (ordinary content rows) is never excluded.
func (f *Filter) IsExcluded(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	_, ok := f.excluded[tag]
	return ok
}
