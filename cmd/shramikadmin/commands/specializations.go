package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shramikadmin/internal/domain"
	"shramikadmin/internal/forms"
	"shramikadmin/internal/navigation"
)

func specializationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "specializations",
		Aliases: []string{"specs"},
		Short:   "List, inspect and edit specializations",
	}
	cmd.AddCommand(
		specListCmd(),
		specGetCmd(),
		specCreateCmd(),
		specUpdateCmd(),
		specDeleteCmd(),
	)
	return cmd
}

func specListCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List specializations with summary counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Router.Open(navigation.ScreenSpecializations)
			vm := appCtx.SpecializationsView()
			if err := vm.Load(cmd.Context(), domain.SpecializationStatus(status)); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sum := vm.Summary()
			printCards(out,
				card{"Total Specializations", strconv.Itoa(sum.Total)},
				card{"Active Specializations", strconv.Itoa(sum.Active)},
				card{"Last Updated", sum.LastUpdated},
			)
			tw := newTable(out, "ID", "NAME", "STATUS", "SKILLS", "UPDATED")
			for _, s := range vm.Items() {
				row(tw, s.ID, s.Name, s.Status, join(s.Skills), date(s.UpdatedAt))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only list Active or Inactive")
	return cmd
}

func specGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one specialization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Router.Open(navigation.ScreenSpecializations)
			s, err := appCtx.Specializations.GetSpecialization(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printSpecialization(cmd, s)
			return nil
		},
	}
}

func specCreateCmd() *cobra.Command {
	var (
		name   string
		status string
		skills []string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a specialization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Router.Open(navigation.ScreenCreateSpecialization)
			form := forms.NewSpecializationForm()
			form.Name = name
			if status != "" {
				form.Status = domain.SpecializationStatus(status)
			}
			form.AddSkills(skills...)

			created, err := form.Submit(cmd.Context(), appCtx.SpecializationsView())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Specialization created successfully!")
			printSpecialization(cmd, created)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "specialization name")
	cmd.Flags().StringVar(&status, "status", "", "Active (default) or Inactive")
	cmd.Flags().StringArrayVar(&skills, "skill", nil, "skill tag; repeat or separate with commas")
	return cmd
}

func specUpdateCmd() *cobra.Command {
	var (
		name    string
		status  string
		skills  []string
		removed []string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a specialization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Router.Open(navigation.ScreenSpecializations)
			current, err := appCtx.Specializations.GetSpecialization(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			form := forms.EditSpecializationForm(current)
			if cmd.Flags().Changed("name") {
				form.Name = name
			}
			if cmd.Flags().Changed("status") {
				form.Status = domain.SpecializationStatus(status)
			}
			form.AddSkills(skills...)
			for _, s := range removed {
				form.RemoveSkill(s)
			}

			updated, err := form.Submit(cmd.Context(), appCtx.SpecializationsView())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Specialization updated successfully!")
			printSpecialization(cmd, updated)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&status, "status", "", "Active or Inactive")
	cmd.Flags().StringArrayVar(&skills, "skill", nil, "skill tag to add")
	cmd.Flags().StringArrayVar(&removed, "remove-skill", nil, "skill tag to remove")
	return cmd
}

func specDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a specialization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Router.Open(navigation.ScreenSpecializations)
			if err := appCtx.SpecializationsView().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted specialization %s\n", args[0])
			return nil
		},
	}
}

func printSpecialization(cmd *cobra.Command, s domain.Specialization) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:      %s\n", s.ID)
	fmt.Fprintf(out, "Name:    %s\n", s.Name)
	fmt.Fprintf(out, "Status:  %s\n", s.Status)
	fmt.Fprintf(out, "Skills:  %s\n", join(s.Skills))
	fmt.Fprintf(out, "Updated: %s\n", date(s.UpdatedAt))
}
