package forms

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"shramikadmin/internal/domain"
)

const (
	minQuestions = 1
	minOptions   = 2
)

// OptionRow is one editable answer. Key is only meaningful inside the
// builder.
type OptionRow struct {
	Key     string
	Label   string
	Correct bool
}

// QuestionRow is one editable question.
type QuestionRow struct {
	Key     string
	Text    string
	Options []OptionRow
}

// QuestionSetSaver persists a built question set.
type QuestionSetSaver interface {
	Create(ctx context.Context, payload domain.QuestionSetPayload) (domain.QuestionSet, error)
	Update(ctx context.Context, id string, payload domain.QuestionSetPayload) (domain.QuestionSet, error)
}

// QuestionSetBuilder edits a question set before it is submitted. It always
// holds at least one question, and every question at least two options.
type QuestionSetBuilder struct {
	editID    string
	name      string
	selected  []string
	questions []QuestionRow
}

// NewQuestionSetBuilder starts with one blank question.
func NewQuestionSetBuilder() *QuestionSetBuilder {
	return &QuestionSetBuilder{questions: []QuestionRow{newQuestion()}}
}

// EditQuestionSet returns a builder preloaded from qs. Submitting it updates
// qs instead of creating a new set.
func EditQuestionSet(qs domain.QuestionSet) *QuestionSetBuilder {
	b := &QuestionSetBuilder{editID: qs.ID, name: qs.Name}
	for _, ref := range qs.SpecializationIDs {
		b.selected = append(b.selected, ref.ID)
	}
	b.setQuestions(qs.Questions)
	return b
}

// FromPayload returns a create builder holding p, for input that arrives
// already structured (for example a file).
func FromPayload(p domain.QuestionSetPayload) *QuestionSetBuilder {
	b := &QuestionSetBuilder{}
	b.LoadPayload(p)
	return b
}

// LoadPayload replaces the name, selection and questions with p and keeps
// the builder's mode.
func (b *QuestionSetBuilder) LoadPayload(p domain.QuestionSetPayload) {
	b.name = p.Name
	b.selected = slices.Clone(p.SpecializationIDs)
	b.setQuestions(p.Questions)
}

func (b *QuestionSetBuilder) setQuestions(qs []domain.Question) {
	b.questions = b.questions[:0]
	for _, q := range qs {
		row := QuestionRow{Key: uuid.NewString(), Text: q.Text}
		for _, o := range q.Options {
			row.Options = append(row.Options, OptionRow{Key: uuid.NewString(), Label: o.Text, Correct: o.IsCorrect})
		}
		for len(row.Options) < minOptions {
			row.Options = append(row.Options, newOption())
		}
		b.questions = append(b.questions, row)
	}
	if len(b.questions) == 0 {
		b.questions = []QuestionRow{newQuestion()}
	}
}

// Editing reports whether the builder updates an existing set, and which.
func (b *QuestionSetBuilder) Editing() (string, bool) { return b.editID, b.editID != "" }

// Name returns the set name.
func (b *QuestionSetBuilder) Name() string { return b.name }

// SetName sets the set name. An empty name is omitted from the payload.
func (b *QuestionSetBuilder) SetName(name string) { b.name = name }

// Questions returns a copy of the rows.
func (b *QuestionSetBuilder) Questions() []QuestionRow {
	out := make([]QuestionRow, len(b.questions))
	for i, q := range b.questions {
		out[i] = q
		out[i].Options = slices.Clone(q.Options)
	}
	return out
}

// QuestionCount returns the number of question rows.
func (b *QuestionSetBuilder) QuestionCount() int { return len(b.questions) }

// Selected returns the chosen specialization ids in selection order.
func (b *QuestionSetBuilder) Selected() []string { return slices.Clone(b.selected) }

// ToggleSpecialization selects id, or deselects it when already selected.
func (b *QuestionSetBuilder) ToggleSpecialization(id string) {
	if i := slices.Index(b.selected, id); i >= 0 {
		b.selected = slices.Delete(b.selected, i, i+1)
		return
	}
	b.selected = append(b.selected, id)
}

// SelectedLabels returns the names of selected ids found in available.
func (b *QuestionSetBuilder) SelectedLabels(available []domain.Specialization) []string {
	names := make(map[string]string, len(available))
	for _, s := range available {
		names[s.ID] = s.Name
	}
	var out []string
	for _, id := range b.selected {
		if n, ok := names[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

// AddQuestion appends a blank question and returns its key.
func (b *QuestionSetBuilder) AddQuestion() string {
	q := newQuestion()
	b.questions = append(b.questions, q)
	return q.Key
}

// RemoveQuestion deletes a question unless it is the last one.
func (b *QuestionSetBuilder) RemoveQuestion(key string) bool {
	if len(b.questions) <= minQuestions {
		return false
	}
	i := b.question(key)
	if i < 0 {
		return false
	}
	b.questions = slices.Delete(b.questions, i, i+1)
	return true
}

// SetQuestionText replaces a question's text.
func (b *QuestionSetBuilder) SetQuestionText(key, text string) bool {
	i := b.question(key)
	if i < 0 {
		return false
	}
	b.questions[i].Text = text
	return true
}

// AddOption appends a blank option to a question and returns its key.
func (b *QuestionSetBuilder) AddOption(questionKey string) (string, bool) {
	i := b.question(questionKey)
	if i < 0 {
		return "", false
	}
	o := newOption()
	b.questions[i].Options = append(b.questions[i].Options, o)
	return o.Key, true
}

// RemoveOption deletes an option unless the question would drop below two.
func (b *QuestionSetBuilder) RemoveOption(questionKey, optionKey string) bool {
	i, j := b.option(questionKey, optionKey)
	if j < 0 || len(b.questions[i].Options) <= minOptions {
		return false
	}
	b.questions[i].Options = slices.Delete(b.questions[i].Options, j, j+1)
	return true
}

// SetOptionLabel replaces an option's label.
func (b *QuestionSetBuilder) SetOptionLabel(questionKey, optionKey, label string) bool {
	i, j := b.option(questionKey, optionKey)
	if j < 0 {
		return false
	}
	b.questions[i].Options[j].Label = label
	return true
}

// ToggleCorrect flips whether an option is a correct answer.
func (b *QuestionSetBuilder) ToggleCorrect(questionKey, optionKey string) bool {
	i, j := b.option(questionKey, optionKey)
	if j < 0 {
		return false
	}
	b.questions[i].Options[j].Correct = !b.questions[i].Options[j].Correct
	return true
}

// Validate runs the checks in order and returns the first failure.
func (b *QuestionSetBuilder) Validate() error {
	if len(b.selected) == 0 {
		return invalid("Please select at least one specialization.")
	}
	if len(b.questions) == 0 {
		return invalid("At least one question is required.")
	}
	for i, q := range b.questions {
		n := i + 1
		if strings.TrimSpace(q.Text) == "" {
			return invalidQuestion(n, "Question %d cannot be empty.")
		}
		filled, correct := 0, false
		for _, o := range q.Options {
			if strings.TrimSpace(o.Label) == "" {
				continue
			}
			filled++
			correct = correct || o.Correct
		}
		if filled < minOptions {
			return invalidQuestion(n, "Question %d must have at least two options.")
		}
		if !correct {
			return invalidQuestion(n, "Question %d must have at least one correct option.")
		}
	}
	return nil
}

// Payload validates and returns the submission body: text trimmed, blank
// options dropped, row keys discarded.
func (b *QuestionSetBuilder) Payload() (domain.QuestionSetPayload, error) {
	if err := b.Validate(); err != nil {
		return domain.QuestionSetPayload{}, err
	}
	p := domain.QuestionSetPayload{
		Name:              strings.TrimSpace(b.name),
		SpecializationIDs: slices.Clone(b.selected),
		Questions:         make([]domain.Question, 0, len(b.questions)),
	}
	for _, q := range b.questions {
		out := domain.Question{Text: strings.TrimSpace(q.Text)}
		for _, o := range q.Options {
			label := strings.TrimSpace(o.Label)
			if label == "" {
				continue
			}
			out.Options = append(out.Options, domain.Option{Text: label, IsCorrect: o.Correct})
		}
		p.Questions = append(p.Questions, out)
	}
	return p, nil
}

// Submit validates, then creates or updates through s.
func (b *QuestionSetBuilder) Submit(ctx context.Context, s QuestionSetSaver) (domain.QuestionSet, error) {
	p, err := b.Payload()
	if err != nil {
		return domain.QuestionSet{}, err
	}
	if id, ok := b.Editing(); ok {
		return s.Update(ctx, id, p)
	}
	return s.Create(ctx, p)
}

func (b *QuestionSetBuilder) question(key string) int {
	return slices.IndexFunc(b.questions, func(q QuestionRow) bool { return q.Key == key })
}

func (b *QuestionSetBuilder) option(questionKey, optionKey string) (int, int) {
	i := b.question(questionKey)
	if i < 0 {
		return -1, -1
	}
	j := slices.IndexFunc(b.questions[i].Options, func(o OptionRow) bool { return o.Key == optionKey })
	return i, j
}

func newOption() OptionRow { return OptionRow{Key: uuid.NewString()} }

func newQuestion() QuestionRow {
	return QuestionRow{Key: uuid.NewString(), Options: []OptionRow{newOption(), newOption()}}
}
