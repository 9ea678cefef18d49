package forms

import (
	"context"
	"slices"
	"strings"

	"shramikadmin/internal/domain"
)

// SpecializationSaver persists specializations.
type SpecializationSaver interface {
	Create(ctx context.Context, payload domain.SpecializationPayload) (domain.Specialization, error)
	Update(ctx context.Context, id string, payload domain.SpecializationPayload) (domain.Specialization, error)
}

// SpecializationForm is the create/edit specialization screen.
type SpecializationForm struct {
	Mode   Mode                        `validate:"-"`
	ID     string                      `validate:"-"`
	Name   string                      `validate:"required"`
	Status domain.SpecializationStatus `validate:"oneof=Active Inactive"`
	skills []string
}

var specializationMessages = messages{
	"Name.required": "Specialization name is required.",
	"Status.oneof":  "Status must be Active or Inactive.",
}

// NewSpecializationForm returns an empty, active create form.
func NewSpecializationForm() *SpecializationForm {
	return &SpecializationForm{Mode: ModeCreate, Status: domain.StatusActive}
}

// EditSpecializationForm returns an edit form filled from s.
func EditSpecializationForm(s domain.Specialization) *SpecializationForm {
	f := &SpecializationForm{Mode: ModeEdit, ID: s.ID, Name: s.Name, Status: s.Status}
	f.AddSkills(s.Skills...)
	return f
}

// Skills returns the tags in insertion order.
func (f *SpecializationForm) Skills() []string { return slices.Clone(f.skills) }

// AddSkills adds each comma-separated entry of inputs. Entries are trimmed;
// blanks and duplicates are ignored.
func (f *SpecializationForm) AddSkills(inputs ...string) {
	for _, in := range inputs {
		for _, part := range strings.Split(in, ",") {
			skill := strings.TrimSpace(part)
			if skill == "" || slices.Contains(f.skills, skill) {
				continue
			}
			f.skills = append(f.skills, skill)
		}
	}
}

// RemoveSkill drops a tag.
func (f *SpecializationForm) RemoveSkill(skill string) {
	f.skills = slices.DeleteFunc(f.skills, func(s string) bool { return s == skill })
}

// Validate checks the name and status.
func (f *SpecializationForm) Validate() error {
	trimmed := *f
	trimmed.Name = strings.TrimSpace(f.Name)
	return check(trimmed, specializationMessages)
}

// Payload validates and returns the submission body.
func (f *SpecializationForm) Payload() (domain.SpecializationPayload, error) {
	if err := f.Validate(); err != nil {
		return domain.SpecializationPayload{}, err
	}
	skills := f.Skills()
	if skills == nil {
		skills = []string{}
	}
	return domain.SpecializationPayload{
		Name:   strings.TrimSpace(f.Name),
		Status: f.Status,
		Skills: skills,
	}, nil
}

// Submit validates and creates or updates through s.
func (f *SpecializationForm) Submit(ctx context.Context, s SpecializationSaver) (domain.Specialization, error) {
	p, err := f.Payload()
	if err != nil {
		return domain.Specialization{}, err
	}
	if f.Mode == ModeEdit {
		return s.Update(ctx, f.ID, p)
	}
	return s.Create(ctx, p)
}
