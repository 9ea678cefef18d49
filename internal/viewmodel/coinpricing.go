package viewmodel

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"shramikadmin/internal/domain"
)

// CoinPricing is the pricing screen: one category's packages and rules.
type CoinPricing struct {
	state
	gw       domain.CoinPricingGateway
	log      zerolog.Logger
	category domain.Category
	packages []domain.CoinPackage
	rules    domain.CoinRules
}

// NewCoinPricing returns an idle view-model on the job seeker tab.
func NewCoinPricing(gw domain.CoinPricingGateway, log zerolog.Logger) *CoinPricing {
	return &CoinPricing{
		gw:       gw,
		log:      log.With().Str("screen", "coin-pricing").Logger(),
		category: domain.CategoryJobSeeker,
	}
}

// Category returns the active tab.
func (v *CoinPricing) Category() domain.Category {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.category
}

// Packages returns the packages sorted by coins.
func (v *CoinPricing) Packages() []domain.CoinPackage {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.packages)
}

// Rules returns the loaded rules.
func (v *CoinPricing) Rules() domain.CoinRules {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rules
}

// Load refetches the active category.
func (v *CoinPricing) Load(ctx context.Context) error {
	return v.SwitchCategory(ctx, v.Category())
}

// SwitchCategory fetches category and makes it active. On failure the
// previous tab and its data stay in place.
func (v *CoinPricing) SwitchCategory(ctx context.Context, category domain.Category) error {
	if _, err := domain.ParseCategory(string(category)); err != nil {
		return v.fail(err)
	}
	if err := v.begin(); err != nil {
		return err
	}
	sheet, err := v.gw.GetCoinPricing(ctx, category)
	return v.finish(err, func() {
		v.category = category
		v.packages = sortByCoins(sheet.Packages)
		v.rules = sheet.Rules
		v.log.Debug().Str("category", string(category)).Int("packages", len(sheet.Packages)).Msg("loaded")
	})
}

// CreatePackage adds a package to the active category.
func (v *CoinPricing) CreatePackage(
	ctx context.Context,
	payload domain.CoinPackagePayload,
) (domain.CoinPackage, error) {
	if err := v.begin(); err != nil {
		return domain.CoinPackage{}, err
	}
	created, err := v.gw.CreateCoinPackage(ctx, v.category, payload)
	return created, v.finish(err, func() {
		v.packages = sortByCoins(append(v.packages, created))
	})
}

// UpdatePackage patches a package and re-sorts.
func (v *CoinPricing) UpdatePackage(
	ctx context.Context,
	id string,
	patch domain.CoinPackagePatch,
) (domain.CoinPackage, error) {
	if err := v.begin(); err != nil {
		return domain.CoinPackage{}, err
	}
	updated, err := v.gw.UpdateCoinPackage(ctx, v.category, id, patch)
	return updated, v.finish(err, func() {
		replaceByID(v.packages, packageID, updated)
		v.packages = sortByCoins(v.packages)
	})
}

// DeletePackage removes a package on the server, then locally.
func (v *CoinPricing) DeletePackage(ctx context.Context, id string) error {
	if err := v.begin(); err != nil {
		return err
	}
	err := v.gw.DeleteCoinPackage(ctx, v.category, id)
	return v.finish(err, func() {
		v.packages = removeByID(v.packages, packageID, id)
	})
}

// ToggleVisibility flips isVisible of a loaded package and stores the
// server's copy in place.
func (v *CoinPricing) ToggleVisibility(ctx context.Context, id string) (domain.CoinPackage, error) {
	if err := v.begin(); err != nil {
		return domain.CoinPackage{}, err
	}
	v.mu.Lock()
	i := slices.IndexFunc(v.packages, func(p domain.CoinPackage) bool { return p.ID == id })
	var visible bool
	if i >= 0 {
		visible = !v.packages[i].IsVisible
	}
	v.mu.Unlock()
	if i < 0 {
		return domain.CoinPackage{}, v.finish(fmt.Errorf("%w: package %s", ErrNotLoaded, id), nil)
	}

	updated, err := v.gw.UpdateCoinPackage(ctx, v.category, id, domain.CoinPackagePatch{IsVisible: &visible})
	return updated, v.finish(err, func() {
		replaceByID(v.packages, packageID, updated)
	})
}

// UpdateRules sends value as the knob of the active category only.
func (v *CoinPricing) UpdateRules(ctx context.Context, value int) (domain.CoinRules, error) {
	if err := v.begin(); err != nil {
		return domain.CoinRules{}, err
	}
	rules, err := v.gw.UpdateCoinRules(ctx, v.category, RulesPatch(v.category, value))
	return rules, v.finish(err, func() {
		v.rules = rules
	})
}

// RuleSummary describes the active category's rule.
func (v *CoinPricing) RuleSummary() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return RuleSummary(v.category, v.rules)
}

// RuleSummary describes the rule that applies to category.
func RuleSummary(category domain.Category, r domain.CoinRules) string {
	if category == domain.CategoryJobSeeker {
		return fmt.Sprintf("%d coins per application", r.CoinCostPerApplication)
	}
	return fmt.Sprintf("%d coins per employee", r.CoinPerEmployeeCount)
}

// RulesValue returns the knob of r that category edits.
func RulesValue(category domain.Category, r domain.CoinRules) int {
	if category == domain.CategoryJobSeeker {
		return r.CoinCostPerApplication
	}
	return r.CoinPerEmployeeCount
}

// RulesPatch builds a rules update carrying only category's knob.
func RulesPatch(category domain.Category, value int) domain.CoinRulesPatch {
	if category == domain.CategoryJobSeeker {
		return domain.CoinRulesPatch{CoinCostPerApplication: &value}
	}
	return domain.CoinRulesPatch{CoinPerEmployeeCount: &value}
}

func sortByCoins(pkgs []domain.CoinPackage) []domain.CoinPackage {
	out := slices.Clone(pkgs)
	slices.SortStableFunc(out, func(a, b domain.CoinPackage) int { return a.Coins - b.Coins })
	return out
}

func packageID(p domain.CoinPackage) string { return p.ID }
