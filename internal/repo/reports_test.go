package repo

import (
	"context"
	"testing"

	"github.com/pariwisata-jepara/backend/internal/domain"
	"github.com/pariwisata-jepara/backend/internal/store/memory"
)

func TestCreateReportDefaults(t *testing.T) {
	r := NewReports(memory.New(), fixedNow)

	rep, err := r.Create(context.Background(), ReportInput{Title: "Laporan Kunjungan"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rep.Category != "Umum" {
		t.Errorf("Create() category = %q, want Umum", rep.Category)
	}
	if rep.Status != domain.ReportDraft {
		t.Errorf("Create() status = %q, want Draft", rep.Status)
	}
	if rep.Size != "0 KB" {
		t.Errorf("Create() size = %q, want 0 KB", rep.Size)
	}
	if rep.Author != "Admin" {
		t.Errorf("Create() author = %q, want Admin", rep.Author)
	}
	if rep.Date != "10 Apr 2026" {
		t.Errorf("Create() date = %q, want %q", rep.Date, "10 Apr 2026")
	}
}

func TestCreateReportUnknownStatusFallsBackToDraft(t *testing.T) {
	r := NewReports(memory.New(), fixedNow)

	rep, err := r.Create(context.Background(), ReportInput{Title: "Audit", Status: "Archived"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rep.Status != domain.ReportDraft {
		t.Errorf("Create() status = %q, want Draft for unknown input", rep.Status)
	}
}

func TestCreateReportPrepends(t *testing.T) {
	r := NewReports(memory.New(), fixedNow)
	ctx := context.Background()

	if _, err := r.Create(ctx, ReportInput{Title: "first"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := r.Create(ctx, ReportInput{Title: "second"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	items, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("List() returned %d reports, want 2", len(items))
	}
	if items[0].Title != "second" || items[1].Title != "first" {
		t.Errorf("List() order = [%s %s], want newest first", items[0].Title, items[1].Title)
	}
}

func TestCreateReportRequiresTitle(t *testing.T) {
	r := NewReports(memory.New(), fixedNow)

	_, err := r.Create(context.Background(), ReportInput{})
	if !domain.IsCode(err, domain.ErrCodeInvalid) {
		t.Errorf("Create() error = %v, want validation error", err)
	}
}

func TestDeleteReport(t *testing.T) {
	r := NewReports(memory.New(), fixedNow)
	ctx := context.Background()

	rep, err := r.Create(ctx, ReportInput{Title: "Rekap Event"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deleted, err := r.Delete(ctx, rep.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.Title != "Rekap Event" {
		t.Errorf("Delete() returned %q", deleted.Title)
	}

	if _, err := r.Delete(ctx, rep.ID); !domain.IsCode(err, domain.ErrCodeNotFound) {
		t.Errorf("Delete() second call error = %v, want not found", err)
	}
}
