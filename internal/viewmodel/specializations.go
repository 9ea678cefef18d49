package viewmodel

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"shramikadmin/internal/domain"
)

// SpecializationSummary is the card row of the specializations screen.
type SpecializationSummary struct {
	Total       int
	Active      int
	LastUpdated string
}

// Specializations is the list screen for specializations.
type Specializations struct {
	state
	gw    domain.SpecializationGateway
	log   zerolog.Logger
	items []domain.Specialization
}

// NewSpecializations returns an idle view-model over gw.
func NewSpecializations(gw domain.SpecializationGateway, log zerolog.Logger) *Specializations {
	return &Specializations{gw: gw, log: log.With().Str("screen", "specializations").Logger()}
}

// Load fetches specializations, optionally filtered by status, and replaces
// the collection.
func (v *Specializations) Load(ctx context.Context, status domain.SpecializationStatus) error {
	if err := v.begin(); err != nil {
		return err
	}
	items, err := v.gw.ListSpecializations(ctx, status)
	return v.finish(err, func() {
		v.items = items
		v.log.Debug().Int("count", len(items)).Msg("loaded")
	})
}

// Items returns a copy of the collection.
func (v *Specializations) Items() []domain.Specialization {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.items)
}

// Find returns the loaded specialization with id.
func (v *Specializations) Find(id string) (domain.Specialization, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	i := slices.IndexFunc(v.items, func(s domain.Specialization) bool { return s.ID == id })
	if i < 0 {
		return domain.Specialization{}, false
	}
	return v.items[i], true
}

// Create adds a specialization and appends the server's copy.
func (v *Specializations) Create(
	ctx context.Context,
	payload domain.SpecializationPayload,
) (domain.Specialization, error) {
	if err := v.begin(); err != nil {
		return domain.Specialization{}, err
	}
	created, err := v.gw.CreateSpecialization(ctx, payload)
	return created, v.finish(err, func() {
		v.items = append(v.items, created)
	})
}

// Update changes a specialization and replaces it in place.
func (v *Specializations) Update(
	ctx context.Context,
	id string,
	payload domain.SpecializationPayload,
) (domain.Specialization, error) {
	if err := v.begin(); err != nil {
		return domain.Specialization{}, err
	}
	updated, err := v.gw.UpdateSpecialization(ctx, id, payload)
	return updated, v.finish(err, func() {
		replaceByID(v.items, specializationID, updated)
	})
}

// Delete removes a specialization on the server, then locally.
func (v *Specializations) Delete(ctx context.Context, id string) error {
	if err := v.begin(); err != nil {
		return err
	}
	err := v.gw.DeleteSpecialization(ctx, id)
	return v.finish(err, func() {
		v.items = removeByID(v.items, specializationID, id)
	})
}

// Summary is computed from the current collection.
func (v *Specializations) Summary() SpecializationSummary {
	v.mu.Lock()
	defer v.mu.Unlock()

	sum := SpecializationSummary{Total: len(v.items), LastUpdated: noDate}
	var latest domain.Specialization
	for _, s := range v.items {
		if s.Status == domain.StatusActive {
			sum.Active++
		}
		if s.UpdatedAt.After(latest.UpdatedAt) {
			latest = s
		}
	}
	if sum.Total > 0 {
		sum.LastUpdated = formatDate(latest.UpdatedAt)
	}
	return sum
}

func specializationID(s domain.Specialization) string { return s.ID }
