package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pariwisata-jepara/backend/internal/domain"
	"github.com/pariwisata-jepara/backend/internal/logger"
	"github.com/pariwisata-jepara/backend/internal/store"
	"github.com/pariwisata-jepara/backend/internal/store/memory"
)

const testSeed = `
destinations:
  - id: d1
    label: Pulau Panjang
    tags: [destinasi, alam]
    users: 12
  - id: d2
    label: Karimunjawa
    tags: [destinasi, favorit]
    users: 24

reports:
  - id: RPT-001
    title: Laporan Kunjungan
    category: Statistik
    date: 31 Jan 2026
    author: Adi Nugroho
    status: Published
    size: 2.4 MB

events:
  - id: e1
    title: Pesta Lomban Kupat
    date: 20 Apr 2026
    time: 08:00 - 14:00
    location: Pantai Kartini
    category: Budaya
    attendees: 12K+
    status: Upcoming
    image: from-blue-500 to-indigo-500
`

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testLogger() logger.Logger { return logger.New("error", false) }

func TestApplySeedsEmptyCollections(t *testing.T) {
	backend := memory.New()
	l := NewLoader(writeSeedFile(t, testSeed), backend, testLogger())
	ctx := context.Background()

	if err := l.Apply(ctx); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	destinations, err := store.Load[domain.Destination](ctx, backend, store.Destinations)
	if err != nil {
		t.Fatal(err)
	}
	if len(destinations) != 2 {
		t.Fatalf("seeded %d destinations, want 2", len(destinations))
	}
	if destinations[0].Href != "/destinasi/pulau-panjang" {
		t.Errorf("seed derived href = %q, want %q", destinations[0].Href, "/destinasi/pulau-panjang")
	}
	if destinations[0].Type != "file" {
		t.Errorf("seed derived type = %q, want file", destinations[0].Type)
	}

	events, err := store.Load[domain.Event](ctx, backend, store.Events)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Time != "08:00 - 14:00" {
		t.Errorf("seeded events = %+v", events)
	}

	reports, err := store.Load[domain.Report](ctx, backend, store.Reports)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0].Status != domain.ReportPublished {
		t.Errorf("seeded reports = %+v", reports)
	}
}

func TestApplySkipsPopulatedCollections(t *testing.T) {
	backend := memory.New()
	ctx := context.Background()

	existing := []domain.Destination{{ID: "d99", Label: "Existing", Users: 1}}
	if err := store.Save(ctx, backend, store.Destinations, existing); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(writeSeedFile(t, testSeed), backend, testLogger())
	if err := l.Apply(ctx); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	destinations, err := store.Load[domain.Destination](ctx, backend, store.Destinations)
	if err != nil {
		t.Fatal(err)
	}
	if len(destinations) != 1 || destinations[0].ID != "d99" {
		t.Errorf("Apply() touched a populated collection: %+v", destinations)
	}
}

func TestLoadMissingFile(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"), memory.New(), testLogger())
	if _, err := l.Load(); err == nil {
		t.Error("Load() error = nil, want error for missing file")
	}
}
