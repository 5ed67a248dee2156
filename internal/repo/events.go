package repo

import (
	"context"
	"strings"
	"time"

	"github.com/pariwisata-jepara/backend/internal/domain"
	"github.com/pariwisata-jepara/backend/internal/store"
)

// Events is the repository for the events collection. Like reports, new
// events are prepended so the collection reads newest first.
//
// Events deliberately have no update operation; editing an event has not
// been a product requirement so far and keeping the surface asymmetric
// with destinations is intentional.
type Events struct {
	backend store.Backend
	now     func() time.Time
}

// NewEvents creates the repository. nil now defaults to time.Now.
func NewEvents(backend store.Backend, now func() time.Time) *Events {
	if now == nil {
		now = time.Now
	}
	return &Events{backend: backend, now: now}
}

// EventInput is the creation payload. Attendees and status are ignored:
// every new event starts Upcoming with "0" attendees.
type EventInput struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// List returns all events in stored order.
func (r *Events) List(ctx context.Context) ([]domain.Event, error) {
	items, err := store.Load[domain.Event](ctx, r.backend, store.Events)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorage, "failed to load events", err)
	}
	return items, nil
}

// GetByID looks an event up by id.
func (r *Events) GetByID(ctx context.Context, id string) (domain.Event, error) {
	items, err := store.Load[domain.Event](ctx, r.backend, store.Events)
	if err != nil {
		return domain.Event{}, domain.WrapError(domain.ErrCodeStorage, "failed to load events", err)
	}
	for _, e := range items {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Event{}, domain.ErrEventNotFound
}

// Create fills defaults and prepends the event to the collection.
func (r *Events) Create(ctx context.Context, in EventInput) (domain.Event, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Event{}, domain.ErrTitleRequired
	}

	items, err := store.Load[domain.Event](ctx, r.backend, store.Events)
	if err != nil {
		return domain.Event{}, domain.WrapError(domain.ErrCodeStorage, "failed to load events", err)
	}

	category := in.Category
	if category == "" {
		category = domain.DefaultCategory
	}
	image := in.Image
	if image == "" {
		image = domain.DefaultEventImage
	}

	e := domain.Event{
		ID:          domain.NewEventID(r.now()),
		Title:       in.Title,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Category:    category,
		Attendees:   "0",
		Status:      domain.EventUpcoming,
		Image:       image,
		Description: in.Description,
	}

	items = append([]domain.Event{e}, items...)
	if err := store.Save(ctx, r.backend, store.Events, items); err != nil {
		return domain.Event{}, domain.WrapError(domain.ErrCodeStorage, "failed to save events", err)
	}
	return e, nil
}

// Delete removes an event by id and returns the removed record.
func (r *Events) Delete(ctx context.Context, id string) (domain.Event, error) {
	items, err := store.Load[domain.Event](ctx, r.backend, store.Events)
	if err != nil {
		return domain.Event{}, domain.WrapError(domain.ErrCodeStorage, "failed to load events", err)
	}

	for i, e := range items {
		if e.ID == id {
			items = append(items[:i], items[i+1:]...)
			if err := store.Save(ctx, r.backend, store.Events, items); err != nil {
				return domain.Event{}, domain.WrapError(domain.ErrCodeStorage, "failed to save events", err)
			}
			return e, nil
		}
	}
	return domain.Event{}, domain.ErrEventNotFound
}
