package repo

import (
	"context"
	"strings"
	"time"

	"github.com/pariwisata-jepara/backend/internal/domain"
	"github.com/pariwisata-jepara/backend/internal/store"
)

// Reports is the repository for the reports collection. New reports are
// prepended: collection order doubles as "most recent first" for the UI.
type Reports struct {
	backend store.Backend
	now     func() time.Time
}

// NewReports creates the repository. nil now defaults to time.Now.
func NewReports(backend store.Backend, now func() time.Time) *Reports {
	if now == nil {
		now = time.Now
	}
	return &Reports{backend: backend, now: now}
}

// ReportInput is the creation payload.
type ReportInput struct {
	Title    string              `json:"title"`
	Category string              `json:"category"`
	Status   domain.ReportStatus `json:"status"`
	Size     string              `json:"size"`
	FileName string              `json:"fileName"`
	FileData string              `json:"fileData"`
}

// List returns all reports in stored order, newest first.
func (r *Reports) List(ctx context.Context) ([]domain.Report, error) {
	items, err := store.Load[domain.Report](ctx, r.backend, store.Reports)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorage, "failed to load reports", err)
	}
	return items, nil
}

// Create fills defaults (category "Umum", status Draft, size "0 KB", the
// placeholder author and a display-formatted creation date) and prepends
// the report to the collection.
func (r *Reports) Create(ctx context.Context, in ReportInput) (domain.Report, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Report{}, domain.ErrTitleRequired
	}

	items, err := store.Load[domain.Report](ctx, r.backend, store.Reports)
	if err != nil {
		return domain.Report{}, domain.WrapError(domain.ErrCodeStorage, "failed to load reports", err)
	}

	now := r.now()
	status := in.Status
	if !domain.ValidReportStatus(status) {
		status = domain.ReportDraft
	}
	category := in.Category
	if category == "" {
		category = domain.DefaultCategory
	}
	size := in.Size
	if size == "" {
		size = "0 KB"
	}

	rep := domain.Report{
		ID:       domain.NewReportID(now),
		Title:    in.Title,
		Category: category,
		Date:     domain.FormatReportDate(now),
		Author:   domain.ReportAuthor,
		Status:   status,
		Size:     size,
		FileName: in.FileName,
		FileData: in.FileData,
	}

	items = append([]domain.Report{rep}, items...)
	if err := store.Save(ctx, r.backend, store.Reports, items); err != nil {
		return domain.Report{}, domain.WrapError(domain.ErrCodeStorage, "failed to save reports", err)
	}
	return rep, nil
}

// Delete removes a report by id and returns the removed record.
func (r *Reports) Delete(ctx context.Context, id string) (domain.Report, error) {
	items, err := store.Load[domain.Report](ctx, r.backend, store.Reports)
	if err != nil {
		return domain.Report{}, domain.WrapError(domain.ErrCodeStorage, "failed to load reports", err)
	}

	for i, rep := range items {
		if rep.ID == id {
			items = append(items[:i], items[i+1:]...)
			if err := store.Save(ctx, r.backend, store.Reports, items); err != nil {
				return domain.Report{}, domain.WrapError(domain.ErrCodeStorage, "failed to save reports", err)
			}
			return rep, nil
		}
	}
	return domain.Report{}, domain.ErrReportNotFound
}
