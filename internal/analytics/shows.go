package analytics

import (
	"context"
	"log/slog"
	"sort"

	"watchcli/internal/viewing"
)

// ShowSummary is one row per distinct show name among TV show sessions
type ShowSummary struct {
	ShowName   string  `json:"show_name"`
	TotalHours float64 `json:"total_hours"`
	Sessions   int     `json:"sessions"`
}

// Shows rolls TV show sessions up by show name. Movie sessions are not
// included. Rows are ordered by total hours descending, with the show name
// ascending as the tie-break so output stays deterministic.
func (a *Aggregator) Shows(ctx context.Context, sessions []viewing.Session) []ShowSummary {
	type rollup struct {
		minutes  float64
		sessions int
	}

	byShow := make(map[string]*rollup)
	for _, s := range sessions {
		if s.ContentType != viewing.ContentTypeTVShow {
			continue
		}
		r := byShow[s.ShowName]
		if r == nil {
			r = &rollup{}
			byShow[s.ShowName] = r
		}
		r.minutes += s.DurationMinutes
		r.sessions++
	}

	shows := make([]ShowSummary, 0, len(byShow))
	for name, r := range byShow {
		shows = append(shows, ShowSummary{
			ShowName:   name,
			TotalHours: r.minutes / 60,
			Sessions:   r.sessions,
		})
	}

	sort.Slice(shows, func(i, j int) bool {
		if shows[i].TotalHours != shows[j].TotalHours {
			return shows[i].TotalHours > shows[j].TotalHours
		}
		return shows[i].ShowName < shows[j].ShowName
	})

	a.logger.InfoContext(ctx, "show rollup completed",
		slog.Int("shows", len(shows)),
	)

	return shows
}
