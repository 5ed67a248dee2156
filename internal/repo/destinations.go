// Package repo implements the typed repositories over the collection
// store: load the full collection, mutate in memory, write it back.
// There is no cross-request locking; two concurrent writers race and the
// last save wins, which is an accepted property of the whole-file design.
package repo

import (
	"context"
	"strings"
	"time"

	"github.com/pariwisata-jepara/backend/internal/domain"
	"github.com/pariwisata-jepara/backend/internal/store"
)

// Destinations is the repository for the destinations collection.
type Destinations struct {
	backend store.Backend
	now     func() time.Time
}

// NewDestinations creates the repository. now is injectable for tests;
// nil defaults to time.Now.
func NewDestinations(backend store.Backend, now func() time.Time) *Destinations {
	if now == nil {
		now = time.Now
	}
	return &Destinations{backend: backend, now: now}
}

// DestinationInput is the creation payload. Tags is a comma-separated
// string, matching what the front end submits.
type DestinationInput struct {
	Title       string `json:"title"`
	Tags        string `json:"tags"`
	Users       *int   `json:"users"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

// DestinationUpdate is a partial update: nil fields are left untouched.
type DestinationUpdate struct {
	Title       *string `json:"title"`
	Tags        *string `json:"tags"`
	Users       *int    `json:"users"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
}

// Search returns the full collection when query is empty, otherwise the
// destinations whose label or any tag contains the query
// case-insensitively. Order is collection order.
func (r *Destinations) Search(ctx context.Context, query string) ([]domain.Destination, error) {
	items, err := store.Load[domain.Destination](ctx, r.backend, store.Destinations)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorage, "failed to load destinations", err)
	}
	if query == "" {
		return items, nil
	}

	q := strings.ToLower(query)
	matched := make([]domain.Destination, 0, len(items))
	for _, d := range items {
		if destinationMatches(d, q) {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func destinationMatches(d domain.Destination, q string) bool {
	if strings.Contains(strings.ToLower(d.Label), q) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// GetBySlug looks a destination up by its computed href.
func (r *Destinations) GetBySlug(ctx context.Context, slug string) (domain.Destination, error) {
	items, err := store.Load[domain.Destination](ctx, r.backend, store.Destinations)
	if err != nil {
		return domain.Destination{}, domain.WrapError(domain.ErrCodeStorage, "failed to load destinations", err)
	}
	href := domain.DestinationPathPrefix + slug
	for _, d := range items {
		if d.Href == href {
			return d, nil
		}
	}
	return domain.Destination{}, domain.ErrDestinationNotFound
}

// GetByID looks a destination up by its opaque id.
func (r *Destinations) GetByID(ctx context.Context, id string) (domain.Destination, error) {
	items, err := store.Load[domain.Destination](ctx, r.backend, store.Destinations)
	if err != nil {
		return domain.Destination{}, domain.WrapError(domain.ErrCodeStorage, "failed to load destinations", err)
	}
	for _, d := range items {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Destination{}, domain.ErrDestinationNotFound
}

// Create validates the input, derives id and href from the title, fills
// defaults and appends the new destination to the collection.
func (r *Destinations) Create(ctx context.Context, in DestinationInput) (domain.Destination, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Destination{}, domain.ErrTitleRequired
	}

	items, err := store.Load[domain.Destination](ctx, r.backend, store.Destinations)
	if err != nil {
		return domain.Destination{}, domain.WrapError(domain.ErrCodeStorage, "failed to load destinations", err)
	}

	now := r.now()
	users := domain.DefaultUsers()
	if in.Users != nil {
		users = *in.Users
	}

	d := domain.Destination{
		ID:          domain.NewDestinationID(now),
		Label:       in.Title,
		Type:        domain.DestinationType,
		Tags:        splitTags(in.Tags),
		Users:       users,
		Href:        domain.DestinationHref(in.Title),
		Description: in.Description,
		Location:    in.Location,
		Category:    in.Category,
		Image:       in.Image,
		CreatedAt:   now,
	}

	items = append(items, d)
	if err := store.Save(ctx, r.backend, store.Destinations, items); err != nil {
		return domain.Destination{}, domain.WrapError(domain.ErrCodeStorage, "failed to save destinations", err)
	}
	return d, nil
}

// Update merges the non-nil fields of in over the stored record. A new
// title regenerates both label and href; the id never changes. Tags, when
// present, fully replace the previous list.
func (r *Destinations) Update(ctx context.Context, id string, in DestinationUpdate) (domain.Destination, error) {
	items, err := store.Load[domain.Destination](ctx, r.backend, store.Destinations)
	if err != nil {
		return domain.Destination{}, domain.WrapError(domain.ErrCodeStorage, "failed to load destinations", err)
	}

	idx := -1
	for i, d := range items {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Destination{}, domain.ErrDestinationNotFound
	}

	d := items[idx]
	if in.Title != nil {
		d.Label = *in.Title
		d.Href = domain.DestinationHref(*in.Title)
	}
	if in.Tags != nil {
		d.Tags = splitTags(*in.Tags)
	}
	if in.Users != nil {
		d.Users = *in.Users
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.Location != nil {
		d.Location = *in.Location
	}
	if in.Category != nil {
		d.Category = *in.Category
	}
	if in.Image != nil {
		d.Image = *in.Image
	}

	items[idx] = d
	if err := store.Save(ctx, r.backend, store.Destinations, items); err != nil {
		return domain.Destination{}, domain.WrapError(domain.ErrCodeStorage, "failed to save destinations", err)
	}
	return d, nil
}

// Delete removes a destination by id and returns the removed record.
func (r *Destinations) Delete(ctx context.Context, id string) (domain.Destination, error) {
	items, err := store.Load[domain.Destination](ctx, r.backend, store.Destinations)
	if err != nil {
		return domain.Destination{}, domain.WrapError(domain.ErrCodeStorage, "failed to load destinations", err)
	}

	for i, d := range items {
		if d.ID == id {
			items = append(items[:i], items[i+1:]...)
			if err := store.Save(ctx, r.backend, store.Destinations, items); err != nil {
				return domain.Destination{}, domain.WrapError(domain.ErrCodeStorage, "failed to save destinations", err)
			}
			return d, nil
		}
	}
	return domain.Destination{}, domain.ErrDestinationNotFound
}

// splitTags turns a comma-separated tag string into a trimmed list,
// defaulting to the generic tag when empty.
func splitTags(tags string) []string {
	if strings.TrimSpace(tags) == "" {
		return []string{domain.DefaultTag}
	}
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return []string{domain.DefaultTag}
	}
	return out
}
