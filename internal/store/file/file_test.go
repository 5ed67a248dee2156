package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pariwisata-jepara/backend/internal/domain"
	"github.com/pariwisata-jepara/backend/internal/store"
)

func TestRoundTrip(t *testing.T) {
	b := New(t.TempDir())
	ctx := context.Background()

	in := []domain.Destination{
		{ID: "d1", Label: "Pulau Panjang", Type: "file", Tags: []string{"destinasi", "alam"}, Users: 12, Href: "/destinasi/pulau-panjang"},
		{ID: "d2", Label: "Karimunjawa", Type: "file", Tags: []string{"destinasi", "favorit"}, Users: 24, Href: "/destinasi/karimunjawa"},
	}
	if err := store.Save(ctx, b, store.Destinations, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := store.Load[domain.Destination](ctx, b, store.Destinations)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("Load() returned %d destinations, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].ID != in[i].ID || out[i].Label != in[i].Label || out[i].Users != in[i].Users {
			t.Errorf("destination %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "does-not-exist"))

	out, err := store.Load[domain.Event](context.Background(), b, store.Events)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil on missing file", err)
	}
	if len(out) != 0 {
		t.Errorf("Load() = %d events, want empty collection", len(out))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "reports.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := store.Load[domain.Report](context.Background(), New(dir), store.Reports)
	if err != nil {
		t.Fatalf("Load() error = %v, want corrupt data treated as empty", err)
	}
	if len(out) != 0 {
		t.Errorf("Load() = %d reports, want empty collection", len(out))
	}
}

func TestWriteCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	b := New(dir)

	if err := store.Save(context.Background(), b, store.Events, []domain.Event{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "events.json")); err != nil {
		t.Errorf("events.json not created: %v", err)
	}
}
