package forms_test

import (
	"context"
	"errors"
	"testing"

	"shramikadmin/internal/domain"
	"shramikadmin/internal/forms"
)

// fill gives every question of b a text and two labelled options, the first
// one correct.
func fill(b *forms.QuestionSetBuilder) {
	for _, q := range b.Questions() {
		b.SetQuestionText(q.Key, " What is "+q.Key[:4]+"? ")
		b.SetOptionLabel(q.Key, q.Options[0].Key, " yes ")
		b.SetOptionLabel(q.Key, q.Options[1].Key, "no")
		if !q.Options[0].Correct {
			b.ToggleCorrect(q.Key, q.Options[0].Key)
		}
	}
}

func wantMessage(t *testing.T, err error, msg string, question int) {
	t.Helper()
	var ve *forms.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want *ValidationError, got %v", err)
	}
	if ve.Message != msg || ve.Question != question {
		t.Fatalf("got (%q, %d), want (%q, %d)", ve.Message, ve.Question, msg, question)
	}
}

func TestBuilder_Defaults(t *testing.T) {
	b := forms.NewQuestionSetBuilder()
	qs := b.Questions()
	if len(qs) != 1 || len(qs[0].Options) != 2 {
		t.Fatalf("default rows = %+v", qs)
	}
	if qs[0].Key == "" || qs[0].Options[0].Key == qs[0].Options[1].Key {
		t.Fatal("rows need distinct keys")
	}
	if _, editing := b.Editing(); editing {
		t.Fatal("new builder must create")
	}
}

func TestBuilder_Floors(t *testing.T) {
	b := forms.NewQuestionSetBuilder()
	q := b.Questions()[0]

	if b.RemoveQuestion(q.Key) {
		t.Fatal("removed the last question")
	}
	if b.RemoveOption(q.Key, q.Options[0].Key) {
		t.Fatal("removed below two options")
	}

	extra, ok := b.AddOption(q.Key)
	if !ok || len(b.Questions()[0].Options) != 3 {
		t.Fatal("add option")
	}
	if !b.RemoveOption(q.Key, extra) || len(b.Questions()[0].Options) != 2 {
		t.Fatal("remove third option")
	}

	second := b.AddQuestion()
	if b.QuestionCount() != 2 || !b.RemoveQuestion(second) || b.QuestionCount() != 1 {
		t.Fatal("add/remove question")
	}
	if b.SetQuestionText("nope", "x") || b.ToggleCorrect(q.Key, "nope") {
		t.Fatal("unknown keys must be ignored")
	}
}

func TestBuilder_ValidationOrder(t *testing.T) {
	b := forms.NewQuestionSetBuilder()
	wantMessage(t, b.Validate(), "Please select at least one specialization.", 0)

	b.ToggleSpecialization("sp-1")
	wantMessage(t, b.Validate(), "Question 1 cannot be empty.", 1)

	fill(b)
	if err := b.Validate(); err != nil {
		t.Fatalf("filled builder: %v", err)
	}

	q2 := b.AddQuestion()
	b.SetQuestionText(q2, "Second?")
	wantMessage(t, b.Validate(), "Question 2 must have at least two options.", 2)

	opts := b.Questions()[1].Options
	b.SetOptionLabel(q2, opts[0].Key, "a")
	b.SetOptionLabel(q2, opts[1].Key, "   ")
	wantMessage(t, b.Validate(), "Question 2 must have at least two options.", 2)

	b.SetOptionLabel(q2, opts[1].Key, "b")
	wantMessage(t, b.Validate(), "Question 2 must have at least one correct option.", 2)

	// a correct mark on a blank option does not count
	third, _ := b.AddOption(q2)
	b.ToggleCorrect(q2, third)
	wantMessage(t, b.Validate(), "Question 2 must have at least one correct option.", 2)

	b.ToggleCorrect(q2, opts[1].Key)
	if err := b.Validate(); err != nil {
		t.Fatalf("valid builder: %v", err)
	}
}

func TestBuilder_PayloadStripsKeysAndBlanks(t *testing.T) {
	b := forms.NewQuestionSetBuilder()
	b.ToggleSpecialization("s1")
	b.ToggleSpecialization("s2")
	b.ToggleSpecialization("s1")
	b.SetName("  Basics ")
	fill(b)
	q := b.Questions()[0]
	b.AddOption(q.Key)

	p, err := b.Payload()
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.Name != "Basics" || len(p.SpecializationIDs) != 1 || p.SpecializationIDs[0] != "s2" {
		t.Fatalf("payload = %+v", p)
	}
	got := p.Questions[0]
	if got.Text != "What is "+q.Key[:4]+"?" {
		t.Fatalf("text = %q", got.Text)
	}
	want := []domain.Option{{Text: "yes", IsCorrect: true}, {Text: "no"}}
	if len(got.Options) != 2 || got.Options[0] != want[0] || got.Options[1] != want[1] {
		t.Fatalf("options = %+v", got.Options)
	}
}

func TestBuilder_EditLoadsDefaults(t *testing.T) {
	qs := domain.QuestionSet{
		ID:                "qs-1",
		SpecializationIDs: []domain.SpecializationRef{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		Questions: []domain.Question{
			{Text: "Has options", Options: []domain.Option{{Text: "x", IsCorrect: true}, {Text: "y"}, {Text: "z"}}},
			{Text: "No options"},
		},
	}
	b := forms.EditQuestionSet(qs)
	if id, ok := b.Editing(); !ok || id != "qs-1" {
		t.Fatalf("editing = %q %v", id, ok)
	}
	rows := b.Questions()
	if len(rows) != 2 || len(rows[0].Options) != 3 || len(rows[1].Options) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[1].Options[0].Label != "" {
		t.Fatal("missing options must load as blanks")
	}
	labels := b.SelectedLabels([]domain.Specialization{{ID: "b", Name: "B"}})
	if len(labels) != 1 || labels[0] != "B" {
		t.Fatalf("labels = %v", labels)
	}

	empty := forms.EditQuestionSet(domain.QuestionSet{ID: "qs-2"})
	if empty.QuestionCount() != 1 {
		t.Fatal("empty set must load one blank question")
	}
}

type recordingSaver struct {
	created, updated int
	lastID           string
}

func (r *recordingSaver) Create(_ context.Context, p domain.QuestionSetPayload) (domain.QuestionSet, error) {
	r.created++
	return domain.QuestionSet{ID: "new"}, nil
}

func (r *recordingSaver) Update(_ context.Context, id string, p domain.QuestionSetPayload) (domain.QuestionSet, error) {
	r.updated++
	r.lastID = id
	return domain.QuestionSet{ID: id}, nil
}

func TestBuilder_SubmitRoutesByMode(t *testing.T) {
	s := &recordingSaver{}

	b := forms.NewQuestionSetBuilder()
	if _, err := b.Submit(context.Background(), s); err == nil || s.created != 0 {
		t.Fatal("invalid builder must not reach the saver")
	}

	b.ToggleSpecialization("x")
	fill(b)
	if _, err := b.Submit(context.Background(), s); err != nil || s.created != 1 {
		t.Fatalf("create: %v", err)
	}

	e := forms.EditQuestionSet(domain.QuestionSet{
		ID:                "qs-9",
		SpecializationIDs: []domain.SpecializationRef{{ID: "x"}},
		Questions:         []domain.Question{{Text: "q", Options: []domain.Option{{Text: "a", IsCorrect: true}, {Text: "b"}}}},
	})
	if _, err := e.Submit(context.Background(), s); err != nil || s.updated != 1 || s.lastID != "qs-9" {
		t.Fatalf("update: %v %+v", err, s)
	}
}

func TestBuilder_LoadPayloadKeepsEditMode(t *testing.T) {
	b := forms.EditQuestionSet(domain.QuestionSet{ID: "qs-3", Name: "Old"})
	b.LoadPayload(domain.QuestionSetPayload{
		Name:              "New",
		SpecializationIDs: []string{"s"},
		Questions:         []domain.Question{{Text: "q"}, {Text: "r"}},
	})
	if id, ok := b.Editing(); !ok || id != "qs-3" {
		t.Fatal("mode lost")
	}
	if b.Name() != "New" || b.QuestionCount() != 2 || len(b.Selected()) != 1 {
		t.Fatalf("name=%q count=%d selected=%v", b.Name(), b.QuestionCount(), b.Selected())
	}
	wantMessage(t, b.Validate(), "Question 1 must have at least two options.", 1)
}

func TestBuilder_LoadPadsShortQuestions(t *testing.T) {
	b := forms.FromPayload(domain.QuestionSetPayload{
		SpecializationIDs: []string{"sp-1"},
		Questions: []domain.Question{{
			Text:    "Only one answer?",
			Options: []domain.Option{{Text: "yes", IsCorrect: true}},
		}},
	})

	opts := b.Questions()[0].Options
	if len(opts) != 2 {
		t.Fatalf("options after load = %d, want 2", len(opts))
	}
	if opts[0].Label != "yes" || !opts[0].Correct || opts[1].Label != "" {
		t.Fatalf("options = %+v", opts)
	}
	wantMessage(t, b.Validate(), "Question 1 must have at least two options.", 1)
}
