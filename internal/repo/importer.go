package repo

import (
	"context"
	"strings"

	"github.com/pariwisata-jepara/backend/internal/domain"
	"github.com/pariwisata-jepara/backend/internal/store"
)

// ImportRecord is one row of an externally parsed destination import.
// Either Label or Title names the destination; everything else is
// optional and default-filled.
type ImportRecord struct {
	Label       string   `json:"label"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Users       *int     `json:"users"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
}

// displayName resolves the record's name, preferring label over title.
func (rec ImportRecord) displayName() string {
	if name := strings.TrimSpace(rec.Label); name != "" {
		return name
	}
	return strings.TrimSpace(rec.Title)
}

// Import maps the records into new destinations and appends them in one
// batch write. Records with neither label nor title are skipped without
// failing the batch. Returns the number of destinations actually added;
// on a save failure nothing is confirmed as persisted.
func (r *Destinations) Import(ctx context.Context, records []ImportRecord) (int, error) {
	items, err := store.Load[domain.Destination](ctx, r.backend, store.Destinations)
	if err != nil {
		return 0, domain.WrapError(domain.ErrCodeStorage, "failed to load destinations", err)
	}

	now := r.now()
	taken := make(map[string]bool, len(items)+len(records))
	for _, d := range items {
		taken[d.ID] = true
	}

	added := 0
	seq := 0
	for _, rec := range records {
		name := rec.displayName()
		if name == "" {
			continue
		}

		// The batch sequence keeps same-millisecond imports apart; a
		// collision against pre-existing ids advances the sequence, so
		// the loop always reaches an unused id.
		id := domain.NewImportedDestinationID(now, seq)
		for taken[id] {
			seq++
			id = domain.NewImportedDestinationID(now, seq)
		}
		taken[id] = true
		seq++

		tags := rec.Tags
		if len(tags) == 0 {
			tags = []string{domain.DefaultTag}
		}
		users := domain.DefaultUsers()
		if rec.Users != nil {
			users = *rec.Users
		}
		category := rec.Category
		if category == "" {
			category = domain.DefaultCategory
		}

		items = append(items, domain.Destination{
			ID:          id,
			Label:       name,
			Type:        domain.DestinationType,
			Tags:        tags,
			Users:       users,
			Href:        domain.DestinationHref(name),
			Description: rec.Description,
			Location:    rec.Location,
			Category:    category,
			Image:       rec.Image,
			CreatedAt:   now,
		})
		added++
	}

	if added == 0 {
		return 0, nil
	}
	if err := store.Save(ctx, r.backend, store.Destinations, items); err != nil {
		return 0, domain.WrapError(domain.ErrCodeStorage, "failed to save destinations", err)
	}
	return added, nil
}
