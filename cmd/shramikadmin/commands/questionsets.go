package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"shramikadmin/internal/domain"
	"shramikadmin/internal/forms"
	"shramikadmin/internal/navigation"
	"shramikadmin/internal/viewmodel"
)

func questionSetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "question-sets",
		Aliases: []string{"qs"},
		Short:   "List, search and build question sets",
	}
	cmd.AddCommand(
		qsListCmd(),
		qsGetCmd(),
		qsCreateCmd(),
		qsUpdateCmd(),
		qsDeleteCmd(),
	)
	return cmd
}

func qsListCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List question sets with summary counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Router.Open(navigation.ScreenQuestionSets)
			vm := appCtx.QuestionSetsView()
			if err := vm.Load(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sum := vm.Summary()
			printCards(out,
				card{"Total Question Sets", strconv.Itoa(sum.TotalSets)},
				card{"Total Questions", strconv.Itoa(sum.TotalQuestions)},
				card{"Specializations Covered", strconv.Itoa(sum.Specializations)},
				card{"Last Updated", sum.LastUpdated},
			)

			sets := vm.Search(search)
			if len(sets) == 0 {
				fmt.Fprintln(out, "No question sets found.")
				return nil
			}
			tw := newTable(out, "ID", "NAME", "QUESTIONS", "SPECIALIZATIONS", "SKILLS")
			for _, qs := range sets {
				names := make([]string, 0, len(qs.SpecializationIDs))
				for _, ref := range qs.SpecializationIDs {
					names = append(names, ref.Name)
				}
				row(tw, qs.ID, qs.Name, qs.QuestionCount(), join(names), join(viewmodel.SkillChips(qs)))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by name")
	return cmd
}

func qsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a question set with its questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Router.Open(navigation.ScreenQuestionSets)
			qs, err := appCtx.QuestionSets.GetQuestionSet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printQuestionSet(cmd, qs)
			return nil
		},
	}
}

func qsCreateCmd() *cobra.Command {
	var file, name string
	cmd := &cobra.Command{
		Use:   "create --file builder.json",
		Short: "Create a question set from a builder file",
		Long: "Create a question set from a JSON builder file shaped like\n" +
			`{"name": "...", "specializationIds": ["<id>"], "questions": [{"text": "...", ` +
			`"options": [{"text": "...", "isCorrect": true}]}]}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Router.Open(navigation.ScreenQuestionSetBuilder)
			p, err := readBuilderFile(file)
			if err != nil {
				return err
			}
			b := forms.FromPayload(p)
			if name != "" {
				b.SetName(name)
			}
			return submitBuilder(cmd, b, "Question set created successfully!")
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "builder file (JSON)")
	cmd.Flags().StringVar(&name, "name", "", "set name, overrides the file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func qsUpdateCmd() *cobra.Command {
	var file, name string
	cmd := &cobra.Command{
		Use:   "update <id> [--file builder.json]",
		Short: "Replace the contents of a question set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Router.Open(navigation.ScreenEditQuestionSet)
			current, err := appCtx.QuestionSets.GetQuestionSet(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			b := forms.EditQuestionSet(current)
			if file != "" {
				p, err := readBuilderFile(file)
				if err != nil {
					return err
				}
				b.LoadPayload(p)
			}
			if name != "" {
				b.SetName(name)
			}
			return submitBuilder(cmd, b, "Question set updated successfully!")
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "builder file (JSON)")
	cmd.Flags().StringVar(&name, "name", "", "new set name")
	return cmd
}

func qsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a question set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Router.Open(navigation.ScreenQuestionSets)
			if err := appCtx.QuestionSetsView().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted question set %s\n", args[0])
			return nil
		},
	}
}

// submitBuilder validates locally, shows which active specializations were
// picked, and saves.
func submitBuilder(cmd *cobra.Command, b *forms.QuestionSetBuilder, done string) error {
	if err := b.Validate(); err != nil {
		return err
	}

	active, err := appCtx.Specializations.ListSpecializations(cmd.Context(), domain.StatusActive)
	if err != nil {
		return fmt.Errorf("load specializations: %w", err)
	}
	out := cmd.OutOrStdout()
	labels := b.SelectedLabels(active)
	if len(labels) < len(b.Selected()) {
		fmt.Fprintf(out, "Note: %d selected specialization(s) are not active\n", len(b.Selected())-len(labels))
	}
	fmt.Fprintf(out, "Specializations: %s\n", join(labels))

	qs, err := b.Submit(cmd.Context(), appCtx.QuestionSetsView())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, done)
	printQuestionSet(cmd, qs)
	return nil
}

func readBuilderFile(path string) (domain.QuestionSetPayload, error) {
	var p domain.QuestionSetPayload
	b, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

func printQuestionSet(cmd *cobra.Command, qs domain.QuestionSet) {
	out := cmd.OutOrStdout()
	names := make([]string, 0, len(qs.SpecializationIDs))
	for _, ref := range qs.SpecializationIDs {
		names = append(names, ref.Name)
	}
	fmt.Fprintf(out, "ID:              %s\n", qs.ID)
	fmt.Fprintf(out, "Name:            %s\n", qs.Name)
	fmt.Fprintf(out, "Specializations: %s\n", join(names))
	fmt.Fprintf(out, "Skills:          %s\n", join(viewmodel.SkillChips(qs)))
	fmt.Fprintf(out, "Questions:       %d\n", qs.QuestionCount())
	for i, q := range qs.Questions {
		fmt.Fprintf(out, "  %d. %s\n", i+1, q.Text)
		for _, o := range q.Options {
			mark := " "
			if o.IsCorrect {
				mark = "*"
			}
			fmt.Fprintf(out, "     [%s] %s\n", mark, o.Text)
		}
	}
}
