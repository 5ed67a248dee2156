package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/pariwisata-jepara/backend/internal/domain"
	"github.com/pariwisata-jepara/backend/internal/store"
	"github.com/pariwisata-jepara/backend/internal/store/memory"
)

func aprilClock() time.Time {
	return time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC)
}

func seedDestinations(t *testing.T, backend store.Backend, destinations []domain.Destination) {
	t.Helper()
	if err := store.Save(context.Background(), backend, store.Destinations, destinations); err != nil {
		t.Fatal(err)
	}
}

func TestTopDestinations(t *testing.T) {
	backend := memory.New()
	users := []int{50, 900, 10, 500, 200, 5, 1}
	destinations := make([]domain.Destination, len(users))
	for i, u := range users {
		destinations[i] = domain.Destination{ID: "d1", Label: "dest", Users: u}
	}
	seedDestinations(t, backend, destinations)

	sum, err := New(backend, aprilClock).Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	want := []int{900, 500, 200, 50, 10}
	if len(sum.TopDestinations) != len(want) {
		t.Fatalf("topDestinations has %d entries, want %d", len(sum.TopDestinations), len(want))
	}
	for i, p := range sum.TopDestinations {
		if p.Value != want[i] {
			t.Errorf("topDestinations[%d] = %d, want %d", i, p.Value, want[i])
		}
	}
}

func TestVisitorTrendBounds(t *testing.T) {
	backend := memory.New()
	seedDestinations(t, backend, []domain.Destination{
		{ID: "d1", Label: "legacy", Users: 10},
		{ID: domain.NewDestinationID(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)), Label: "future", Users: 99},
	})

	sum, err := New(backend, aprilClock).Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if len(sum.VisitorData) != 4 {
		t.Fatalf("visitorData has %d entries in April, want 4 (Jan-Apr)", len(sum.VisitorData))
	}
	wantNames := []string{"Jan", "Feb", "Mar", "Apr"}
	for i, p := range sum.VisitorData {
		if p.Name != wantNames[i] {
			t.Errorf("visitorData[%d].name = %q, want %q", i, p.Name, wantNames[i])
		}
	}
}

func TestVisitorTrendBucketing(t *testing.T) {
	backend := memory.New()
	feb := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	seedDestinations(t, backend, []domain.Destination{
		// Legacy id, no embedded timestamp: present since the start of
		// the year.
		{ID: "d1", Label: "legacy", Users: 10},
		// Created in February: absent from January's bucket.
		{ID: domain.NewDestinationID(feb), Label: "february", Users: 100},
		// Explicit createdAt in March overrides the id-embedded time.
		{
			ID:        domain.NewDestinationID(feb),
			Label:     "march",
			Users:     1000,
			CreatedAt: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
	})

	sum, err := New(backend, aprilClock).Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	want := []int{10, 110, 1110, 1110} // Jan, Feb, Mar, Apr
	for i, p := range sum.VisitorData {
		if p.Value != want[i] {
			t.Errorf("visitorData[%d] (%s) = %d, want %d", i, p.Name, p.Value, want[i])
		}
	}
}

func TestStats(t *testing.T) {
	backend := memory.New()
	ctx := context.Background()
	seedDestinations(t, backend, []domain.Destination{
		{ID: "d1", Label: "a", Users: 12},
		{ID: "d2", Label: "b", Users: 24},
	})
	if err := store.Save(ctx, backend, store.Events, []domain.Event{
		{ID: "e1", Title: "x", Status: domain.EventUpcoming},
		{ID: "e2", Title: "y", Status: domain.EventPast},
		{ID: "e3", Title: "z", Status: domain.EventUpcoming},
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, backend, store.Reports, []domain.Report{{ID: "RPT-001"}}); err != nil {
		t.Fatal(err)
	}

	sum, err := New(backend, aprilClock).Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if sum.Stats.TotalDestinations != 2 {
		t.Errorf("totalDestinations = %d, want 2", sum.Stats.TotalDestinations)
	}
	if sum.Stats.UpcomingEvents != 2 {
		t.Errorf("upcomingEvents = %d, want 2", sum.Stats.UpcomingEvents)
	}
	if sum.Stats.TotalReports != 1 {
		t.Errorf("totalReports = %d, want 1", sum.Stats.TotalReports)
	}
	if sum.Stats.MonthlyVisits != 36 {
		t.Errorf("monthlyVisits = %d, want 36", sum.Stats.MonthlyVisits)
	}
}

func TestEmptyCollections(t *testing.T) {
	sum, err := New(memory.New(), aprilClock).Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if sum.Stats.TotalDestinations != 0 || sum.Stats.MonthlyVisits != 0 {
		t.Errorf("stats = %+v, want zeros", sum.Stats)
	}
	if len(sum.TopDestinations) != 0 {
		t.Errorf("topDestinations = %v, want empty", sum.TopDestinations)
	}
	if len(sum.VisitorData) != 4 {
		t.Errorf("visitorData has %d entries, want one per elapsed month", len(sum.VisitorData))
	}
}
