package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"shramikadmin/internal/domain"
	"shramikadmin/internal/forms"
	"shramikadmin/internal/navigation"
	"shramikadmin/internal/viewmodel"
)

var category string

func coinPricingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "coin-pricing",
		Aliases: []string{"coins"},
		Short:   "Manage coin packages and rules per category",
	}
	cmd.PersistentFlags().StringVarP(&category, "category", "c", string(domain.CategoryJobSeeker),
		"jobSeeker or recruiter")
	cmd.AddCommand(
		coinShowCmd(),
		coinAddPackageCmd(),
		coinEditPackageCmd(),
		coinDeletePackageCmd(),
		coinToggleCmd(),
		coinSetRulesCmd(),
	)
	return cmd
}

// openCoinPricing opens the screen on the selected tab.
func openCoinPricing(cmd *cobra.Command) (*viewmodel.CoinPricing, error) {
	appCtx.Router.Open(navigation.ScreenCoinPricing)
	cat, err := domain.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	vm := appCtx.CoinPricingView()
	if err := vm.SwitchCategory(cmd.Context(), cat); err != nil {
		return nil, err
	}
	return vm, nil
}

func coinShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the rule and packages of a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vm, err := openCoinPricing(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", vm.Category().Label())
			printCards(out, card{"Rule", vm.RuleSummary()})

			pkgs := vm.Packages()
			if len(pkgs) == 0 {
				fmt.Fprintln(out, "No packages yet.")
				return nil
			}
			tw := newTable(out, "ID", "NAME", "COINS", "PRICE", "VISIBLE")
			for _, p := range pkgs {
				row(tw, p.ID, p.Name, p.Coins, price(p.Price), yesNo(p.IsVisible))
			}
			return tw.Flush()
		},
	}
}

func coinAddPackageCmd() *cobra.Command {
	var (
		name   string
		coins  int
		amount float64
		hidden bool
	)
	cmd := &cobra.Command{
		Use:   "add-package",
		Short: "Add a coin package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := forms.NewCoinPackageForm()
			f.Name, f.Coins, f.Price, f.IsVisible = name, coins, amount, !hidden
			if err := f.Validate(); err != nil {
				return err
			}
			vm, err := openCoinPricing(cmd)
			if err != nil {
				return err
			}
			p, err := f.Submit(cmd.Context(), vm)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Package added: %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "package name")
	cmd.Flags().IntVar(&coins, "coins", 0, "coins in the package")
	cmd.Flags().Float64Var(&amount, "price", 0, "price amount")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "create the package hidden")
	return cmd
}

func coinEditPackageCmd() *cobra.Command {
	var (
		name    string
		coins   int
		amount  float64
		visible bool
	)
	cmd := &cobra.Command{
		Use:   "edit-package <id>",
		Short: "Edit a coin package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vm, err := openCoinPricing(cmd)
			if err != nil {
				return err
			}
			pkgs := vm.Packages()
			i := slices.IndexFunc(pkgs, func(p domain.CoinPackage) bool { return p.ID == args[0] })
			if i < 0 {
				return fmt.Errorf("%w: package %s", viewmodel.ErrNotLoaded, args[0])
			}

			f := forms.EditCoinPackageForm(pkgs[i])
			flags := cmd.Flags()
			if flags.Changed("name") {
				f.Name = name
			}
			if flags.Changed("coins") {
				f.Coins = coins
			}
			if flags.Changed("price") {
				f.Price = amount
			}
			if flags.Changed("visible") {
				f.IsVisible = visible
			}
			p, err := f.Submit(cmd.Context(), vm)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Package updated: %s, %d coins, %s\n", p.Name, p.Coins, price(p.Price))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().IntVar(&coins, "coins", 0, "new coin count")
	cmd.Flags().Float64Var(&amount, "price", 0, "new price amount")
	cmd.Flags().BoolVar(&visible, "visible", true, "visibility")
	return cmd
}

func coinDeletePackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-package <id>",
		Short: "Delete a coin package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vm, err := openCoinPricing(cmd)
			if err != nil {
				return err
			}
			if err := vm.DeletePackage(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted package %s\n", args[0])
			return nil
		},
	}
}

func coinToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-visibility <id>",
		Short: "Show or hide a coin package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vm, err := openCoinPricing(cmd)
			if err != nil {
				return err
			}
			p, err := vm.ToggleVisibility(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			state := "hidden"
			if p.IsVisible {
				state = "visible"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Package %s is now %s\n", p.Name, state)
			return nil
		},
	}
}

func coinSetRulesCmd() *cobra.Command {
	var value int
	cmd := &cobra.Command{
		Use:   "set-rules --value N",
		Short: "Set the coin rule of a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := forms.CoinRulesForm{Category: domain.Category(category), Value: value}
			if err := f.Validate(); err != nil {
				return err
			}
			vm, err := openCoinPricing(cmd)
			if err != nil {
				return err
			}
			rules, err := f.Submit(cmd.Context(), vm)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rules updated: %s\n", viewmodel.RuleSummary(vm.Category(), rules))
			return nil
		},
	}
	cmd.Flags().IntVar(&value, "value", 0, "coins per application (jobSeeker) or per employee (recruiter)")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func price(p domain.Price) string {
	return fmt.Sprintf("%.2f %s", p.Amount, p.Currency)
}
