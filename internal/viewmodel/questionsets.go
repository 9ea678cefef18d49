package viewmodel

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"shramikadmin/internal/domain"
)

// QuestionSetSummary is the card row of the question sets screen.
type QuestionSetSummary struct {
	TotalSets       int
	TotalQuestions  int
	Specializations int
	LastUpdated     string
}

// QuestionSets is the list screen for question sets.
type QuestionSets struct {
	state
	gw    domain.QuestionSetGateway
	log   zerolog.Logger
	items []domain.QuestionSet
}

// NewQuestionSets returns an idle view-model over gw.
func NewQuestionSets(gw domain.QuestionSetGateway, log zerolog.Logger) *QuestionSets {
	return &QuestionSets{gw: gw, log: log.With().Str("screen", "question-sets").Logger()}
}

// Load replaces the collection with the server's list.
func (v *QuestionSets) Load(ctx context.Context) error {
	if err := v.begin(); err != nil {
		return err
	}
	items, err := v.gw.ListQuestionSets(ctx)
	return v.finish(err, func() {
		v.items = items
		v.log.Debug().Int("count", len(items)).Msg("loaded")
	})
}

// Items returns a copy of the collection.
func (v *QuestionSets) Items() []domain.QuestionSet {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.items)
}

// Search returns the sets whose name contains term, ignoring case and
// surrounding blanks. An empty term returns everything.
func (v *QuestionSets) Search(term string) []domain.QuestionSet {
	term = strings.ToLower(strings.TrimSpace(term))
	v.mu.Lock()
	defer v.mu.Unlock()
	if term == "" {
		return slices.Clone(v.items)
	}
	var out []domain.QuestionSet
	for _, qs := range v.items {
		if strings.Contains(strings.ToLower(qs.Name), term) {
			out = append(out, qs)
		}
	}
	return out
}

// Create submits a new set and appends the server's copy.
func (v *QuestionSets) Create(ctx context.Context, payload domain.QuestionSetPayload) (domain.QuestionSet, error) {
	if err := v.begin(); err != nil {
		return domain.QuestionSet{}, err
	}
	created, err := v.gw.CreateQuestionSet(ctx, payload)
	return created, v.finish(err, func() {
		v.items = append(v.items, created)
	})
}

// Update submits an edited set and replaces it in place.
func (v *QuestionSets) Update(
	ctx context.Context,
	id string,
	payload domain.QuestionSetPayload,
) (domain.QuestionSet, error) {
	if err := v.begin(); err != nil {
		return domain.QuestionSet{}, err
	}
	updated, err := v.gw.UpdateQuestionSet(ctx, id, payload)
	return updated, v.finish(err, func() {
		replaceByID(v.items, questionSetID, updated)
	})
}

// Delete removes a set on the server, then locally.
func (v *QuestionSets) Delete(ctx context.Context, id string) error {
	if err := v.begin(); err != nil {
		return err
	}
	err := v.gw.DeleteQuestionSet(ctx, id)
	return v.finish(err, func() {
		v.items = removeByID(v.items, questionSetID, id)
	})
}

// Summary is computed from the current collection.
func (v *QuestionSets) Summary() QuestionSetSummary {
	v.mu.Lock()
	defer v.mu.Unlock()

	sum := QuestionSetSummary{TotalSets: len(v.items)}
	names := map[string]struct{}{}
	var latest domain.QuestionSet
	for _, qs := range v.items {
		sum.TotalQuestions += qs.QuestionCount()
		for _, ref := range qs.SpecializationIDs {
			names[ref.Name] = struct{}{}
		}
		if qs.UpdatedAt.After(latest.UpdatedAt) {
			latest = qs
		}
	}
	sum.Specializations = len(names)
	sum.LastUpdated = formatDate(latest.UpdatedAt)
	return sum
}

// SkillChips returns the distinct non-empty skills of the set's
// specializations, in first-seen order.
func SkillChips(qs domain.QuestionSet) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, ref := range qs.SpecializationIDs {
		for _, skill := range ref.Skills {
			if skill == "" {
				continue
			}
			if _, dup := seen[skill]; dup {
				continue
			}
			seen[skill] = struct{}{}
			out = append(out, skill)
		}
	}
	return out
}

func questionSetID(q domain.QuestionSet) string { return q.ID }
