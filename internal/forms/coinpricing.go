package forms

import (
	"context"
	"strings"

	"shramikadmin/internal/domain"
)

// Mode says whether a form creates a new record or edits one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// PackageSaver persists coin packages of the active category.
type PackageSaver interface {
	CreatePackage(ctx context.Context, payload domain.CoinPackagePayload) (domain.CoinPackage, error)
	UpdatePackage(ctx context.Context, id string, patch domain.CoinPackagePatch) (domain.CoinPackage, error)
}

// RulesSaver persists the active category's rule.
type RulesSaver interface {
	UpdateRules(ctx context.Context, value int) (domain.CoinRules, error)
}

// CoinPackageForm is the add/edit package dialog.
type CoinPackageForm struct {
	Mode      Mode    `validate:"-"`
	ID        string  `validate:"-"`
	Name      string  `validate:"required"`
	Coins     int     `validate:"gt=0"`
	Price     float64 `validate:"gt=0"`
	IsVisible bool
}

var coinPackageMessages = messages{
	"Name.required": "Package name is required.",
	"Coins.gt":      "Coins must be greater than 0.",
	"Price.gt":      "Price must be greater than 0.",
}

// NewCoinPackageForm returns an empty create form; new packages are visible.
func NewCoinPackageForm() *CoinPackageForm {
	return &CoinPackageForm{Mode: ModeCreate, IsVisible: true}
}

// EditCoinPackageForm returns an edit form filled from p.
func EditCoinPackageForm(p domain.CoinPackage) *CoinPackageForm {
	return &CoinPackageForm{
		Mode:      ModeEdit,
		ID:        p.ID,
		Name:      p.Name,
		Coins:     p.Coins,
		Price:     p.Price.Amount,
		IsVisible: p.IsVisible,
	}
}

// Validate checks name, coins and price, in that order.
func (f *CoinPackageForm) Validate() error {
	trimmed := *f
	trimmed.Name = strings.TrimSpace(f.Name)
	return check(trimmed, coinPackageMessages)
}

// Submit validates and creates or updates the package through s.
func (f *CoinPackageForm) Submit(ctx context.Context, s PackageSaver) (domain.CoinPackage, error) {
	if err := f.Validate(); err != nil {
		return domain.CoinPackage{}, err
	}
	name := strings.TrimSpace(f.Name)
	visible := f.IsVisible
	if f.Mode == ModeEdit {
		coins, price := f.Coins, f.Price
		return s.UpdatePackage(ctx, f.ID, domain.CoinPackagePatch{
			Name:      &name,
			Coins:     &coins,
			Price:     &price,
			IsVisible: &visible,
		})
	}
	return s.CreatePackage(ctx, domain.CoinPackagePayload{
		Name:      name,
		Coins:     f.Coins,
		Price:     f.Price,
		IsVisible: &visible,
	})
}

// CoinRulesForm edits the one rule that applies to Category.
type CoinRulesForm struct {
	Category domain.Category `validate:"oneof=jobSeeker recruiter"`
	Value    int             `validate:"gte=0"`
}

var coinRulesMessages = messages{
	"Category.oneof": "Category must be jobSeeker or recruiter.",
	"Value.gte":      "Coins must be 0 or greater.",
}

// Validate checks the category and that the value is not negative.
func (f CoinRulesForm) Validate() error { return check(f, coinRulesMessages) }

// Submit validates and saves the rule through s.
func (f CoinRulesForm) Submit(ctx context.Context, s RulesSaver) (domain.CoinRules, error) {
	if err := f.Validate(); err != nil {
		return domain.CoinRules{}, err
	}
	return s.UpdateRules(ctx, f.Value)
}
