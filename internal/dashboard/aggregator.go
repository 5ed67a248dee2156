// Package dashboard computes the read-only analytics summary shown on
// the back-office landing page. It fans out reads across all three
// collections and never writes.
package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/pariwisata-jepara/backend/internal/domain"
	"github.com/pariwisata-jepara/backend/internal/store"
)

// TopDestinationCount is the length of the ranking on the dashboard.
const TopDestinationCount = 5

// Aggregator builds dashboard summaries from the collection store.
type Aggregator struct {
	backend store.Backend
	now     func() time.Time
}

// New creates an aggregator. nil now defaults to time.Now.
func New(backend store.Backend, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{backend: backend, now: now}
}

// Stats are the headline counters.
type Stats struct {
	TotalDestinations int `json:"totalDestinations"`
	UpcomingEvents    int `json:"upcomingEvents"`
	TotalReports      int `json:"totalReports"`
	MonthlyVisits     int `json:"monthlyVisits"`
}

// Point is one chart entry: a month abbreviation or destination name
// with its value.
type Point struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Summary is the full dashboard payload.
type Summary struct {
	Stats           Stats   `json:"stats"`
	VisitorData     []Point `json:"visitorData"`
	TopDestinations []Point `json:"topDestinations"`
}

// Summarize loads all three collections and derives the dashboard view.
// Any load failure fails the whole aggregation; there is no
// partial-metrics fallback.
func (a *Aggregator) Summarize(ctx context.Context) (Summary, error) {
	destinations, err := store.Load[domain.Destination](ctx, a.backend, store.Destinations)
	if err != nil {
		return Summary{}, domain.WrapError(domain.ErrCodeStorage, "failed to load destinations", err)
	}
	events, err := store.Load[domain.Event](ctx, a.backend, store.Events)
	if err != nil {
		return Summary{}, domain.WrapError(domain.ErrCodeStorage, "failed to load events", err)
	}
	reports, err := store.Load[domain.Report](ctx, a.backend, store.Reports)
	if err != nil {
		return Summary{}, domain.WrapError(domain.ErrCodeStorage, "failed to load reports", err)
	}

	upcoming := 0
	for _, e := range events {
		if e.Status == domain.EventUpcoming {
			upcoming++
		}
	}
	visits := 0
	for _, d := range destinations {
		visits += d.Users
	}

	return Summary{
		Stats: Stats{
			TotalDestinations: len(destinations),
			UpcomingEvents:    upcoming,
			TotalReports:      len(reports),
			MonthlyVisits:     visits,
		},
		VisitorData:     visitorTrend(destinations, a.now()),
		TopDestinations: topDestinations(destinations),
	}, nil
}

// topDestinations ranks destinations by visitor count, descending, and
// keeps the first five. The sort is stable so ties keep collection order.
func topDestinations(destinations []domain.Destination) []Point {
	ranked := make([]domain.Destination, len(destinations))
	copy(ranked, destinations)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Users > ranked[j].Users
	})
	if len(ranked) > TopDestinationCount {
		ranked = ranked[:TopDestinationCount]
	}

	points := make([]Point, len(ranked))
	for i, d := range ranked {
		points[i] = Point{Name: d.Label, Value: d.Users}
	}
	return points
}

// visitorTrend buckets the year by month, January through the current
// month. A destination counts toward a month when it existed by that
// month's last instant; destinations without a creation time are treated
// as present since the start of the year. Months after the current one
// are never emitted.
func visitorTrend(destinations []domain.Destination, now time.Time) []Point {
	points := make([]Point, 0, int(now.Month()))
	for m := time.January; m <= now.Month(); m++ {
		boundary := endOfMonth(now.Year(), m, now.Location())

		sum := 0
		for _, d := range destinations {
			created, ok := d.CreationTime()
			if !ok || !created.After(boundary) {
				sum += d.Users
			}
		}
		points = append(points, Point{Name: m.String()[:3], Value: sum})
	}
	return points
}

// endOfMonth returns the last instant of the given month.
func endOfMonth(year int, m time.Month, loc *time.Location) time.Time {
	return time.Date(year, m+1, 1, 0, 0, 0, 0, loc).Add(-time.Nanosecond)
}
