package viewmodel_test

import (
	"context"
	"reflect"
	"testing"

	"shramikadmin/internal/domain"
	"shramikadmin/internal/viewmodel"
)

func question(text string) domain.Question {
	return domain.Question{Text: text, Options: []domain.Option{{Text: "a", IsCorrect: true}, {Text: "b"}}}
}

func TestQuestionSets_SummaryAndSearch(t *testing.T) {
	f := newFixture(t)
	elec := f.srv.SeedSpecialization(domain.Specialization{Name: "Electrician", Skills: []string{"Wiring", "Safety"}})
	plumb := f.srv.SeedSpecialization(domain.Specialization{Name: "Plumber", Skills: []string{"Safety", "Pipes"}})
	f.srv.SeedQuestionSet("Electrical Safety", []string{elec.ID, plumb.ID}, question("q1"), question("q2"))
	f.srv.SeedQuestionSet("Pipe fitting", []string{plumb.ID}, question("q1"))
	vm := f.questionSets()

	if err := vm.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	sum := vm.Summary()
	if sum.TotalSets != 2 || sum.TotalQuestions != 3 || sum.Specializations != 2 || sum.LastUpdated == "—" {
		t.Fatalf("summary = %+v", sum)
	}

	if got := vm.Search("  SAFETY "); len(got) != 1 || got[0].Name != "Electrical Safety" {
		t.Fatalf("search = %v", got)
	}
	if got := vm.Search(""); len(got) != 2 {
		t.Fatalf("empty search = %v", got)
	}
	if got := vm.Search("welding"); len(got) != 0 {
		t.Fatalf("no-match search = %v", got)
	}

	chips := viewmodel.SkillChips(vm.Search("electrical")[0])
	if !reflect.DeepEqual(chips, []string{"Wiring", "Safety", "Pipes"}) {
		t.Fatalf("chips = %v", chips)
	}
}

func TestQuestionSets_Mutations(t *testing.T) {
	f := newFixture(t)
	sp := f.srv.SeedSpecialization(domain.Specialization{Name: "Driver"})
	vm := f.questionSets()
	ctx := context.Background()
	if err := vm.Load(ctx); err != nil {
		t.Fatal(err)
	}

	created, err := vm.Create(ctx, domain.QuestionSetPayload{
		Name:              "Road rules",
		SpecializationIDs: []string{sp.ID},
		Questions:         []domain.Question{question("Stop sign?")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(vm.Items()) != 1 {
		t.Fatalf("items = %v", vm.Items())
	}

	if _, err := vm.Update(ctx, created.ID, domain.QuestionSetPayload{
		SpecializationIDs: []string{sp.ID},
		Questions:         []domain.Question{question("a"), question("b")},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if vm.Summary().TotalQuestions != 2 {
		t.Fatalf("summary = %+v", vm.Summary())
	}

	if err := vm.Delete(ctx, "missing"); err == nil {
		t.Fatal("expected error deleting unknown set")
	}
	if len(vm.Items()) != 1 {
		t.Fatal("collection changed after failed delete")
	}
	if err := vm.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(vm.Items()) != 0 {
		t.Fatal("set not removed")
	}
}

func TestQuestionSets_EmptySummary(t *testing.T) {
	f := newFixture(t)
	vm := f.questionSets()
	if got := vm.Summary(); got != (viewmodel.QuestionSetSummary{LastUpdated: "—"}) {
		t.Fatalf("summary = %+v", got)
	}
}
