// Package seed populates empty collections from a YAML fixture file so a
// fresh install starts with content instead of blank pages.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pariwisata-jepara/backend/internal/domain"
	"github.com/pariwisata-jepara/backend/internal/logger"
	"github.com/pariwisata-jepara/backend/internal/store"
)

// Loader reads and applies a seed file.
type Loader struct {
	filePath string
	backend  store.Backend
	logger   logger.Logger
}

// NewLoader creates a seed loader for the given file.
func NewLoader(filePath string, backend store.Backend, log logger.Logger) *Loader {
	return &Loader{filePath: filePath, backend: backend, logger: log}
}

// Load parses the seed file.
func (l *Loader) Load() (*Data, error) {
	raw, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}
	return &data, nil
}

// Apply writes seed records into every collection that is still empty.
// Collections that already hold data are never touched.
func (l *Loader) Apply(ctx context.Context) error {
	data, err := l.Load()
	if err != nil {
		return err
	}

	if err := seedCollection(ctx, l, store.Destinations, data.destinations()); err != nil {
		return err
	}
	if err := seedCollection(ctx, l, store.Reports, data.reports()); err != nil {
		return err
	}
	if err := seedCollection(ctx, l, store.Events, data.events()); err != nil {
		return err
	}
	return nil
}

func seedCollection[T any](ctx context.Context, l *Loader, name string, records []T) error {
	if len(records) == 0 {
		return nil
	}

	existing, err := store.Load[T](ctx, l.backend, name)
	if err != nil {
		return fmt.Errorf("failed to check %s before seeding: %w", name, err)
	}
	if len(existing) > 0 {
		l.logger.Debug("collection already populated, skipping seed",
			logger.String("collection", name),
			logger.Int("records", len(existing)))
		return nil
	}

	if err := store.Save(ctx, l.backend, name, records); err != nil {
		return fmt.Errorf("failed to seed %s: %w", name, err)
	}
	l.logger.Info("seeded collection",
		logger.String("collection", name),
		logger.Int("records", len(records)))
	return nil
}

func (d *Data) destinations() []domain.Destination {
	out := make([]domain.Destination, 0, len(d.Destinations))
	for _, rec := range d.Destinations {
		typ := rec.Type
		if typ == "" {
			typ = domain.DestinationType
		}
		href := rec.Href
		if href == "" {
			href = domain.DestinationHref(rec.Label)
		}
		out = append(out, domain.Destination{
			ID:          rec.ID,
			Label:       rec.Label,
			Type:        typ,
			Tags:        rec.Tags,
			Users:       rec.Users,
			Href:        href,
			Description: rec.Description,
			Location:    rec.Location,
			Category:    rec.Category,
			Image:       rec.Image,
		})
	}
	return out
}

func (d *Data) reports() []domain.Report {
	out := make([]domain.Report, 0, len(d.Reports))
	for _, rec := range d.Reports {
		out = append(out, domain.Report{
			ID:       rec.ID,
			Title:    rec.Title,
			Category: rec.Category,
			Date:     rec.Date,
			Author:   rec.Author,
			Status:   domain.ReportStatus(rec.Status),
			Size:     rec.Size,
		})
	}
	return out
}

func (d *Data) events() []domain.Event {
	out := make([]domain.Event, 0, len(d.Events))
	for _, rec := range d.Events {
		out = append(out, domain.Event{
			ID:          rec.ID,
			Title:       rec.Title,
			Date:        rec.Date,
			Time:        rec.Time,
			Location:    rec.Location,
			Category:    rec.Category,
			Attendees:   rec.Attendees,
			Status:      domain.EventStatus(rec.Status),
			Image:       rec.Image,
			Description: rec.Description,
		})
	}
	return out
}
