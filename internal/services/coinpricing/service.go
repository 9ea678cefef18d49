package coinpricing

import (
	"context"

	"shramikadmin/internal/apiclient"
	"shramikadmin/internal/domain"
)

const (
	resource     = "coin-pricing"
	fieldPackage = "package"
	fieldRules   = "rules"
)

// Service reads and edits coin pricing sheets.
type Service struct {
	client *apiclient.Client
}

// New returns a coin-pricing gateway using client.
func New(client *apiclient.Client) *Service { return &Service{client: client} }

// GetCoinPricing returns the category's packages and rules. Absent packages
// read as an empty list and absent rules as zero.
func (s *Service) GetCoinPricing(ctx context.Context, category domain.Category) (domain.CoinPricing, error) {
	path, err := categoryPath(category)
	if err != nil {
		return domain.CoinPricing{}, err
	}
	resp, err := s.client.Get(ctx, path, nil)
	if err != nil {
		return domain.CoinPricing{}, err
	}
	out, err := apiclient.UnwrapData[domain.CoinPricing](resp)
	if err != nil {
		return domain.CoinPricing{}, err
	}
	if out.Packages == nil {
		out.Packages = []domain.CoinPackage{}
	}
	return out, nil
}

func (s *Service) CreateCoinPackage(
	ctx context.Context,
	category domain.Category,
	payload domain.CoinPackagePayload,
) (domain.CoinPackage, error) {
	path, err := categoryPath(category, "packages")
	if err != nil {
		return domain.CoinPackage{}, err
	}
	resp, err := s.client.Post(ctx, path, payload)
	if err != nil {
		return domain.CoinPackage{}, err
	}
	return apiclient.Unwrap[domain.CoinPackage](resp, fieldPackage)
}

// UpdateCoinPackage sends only the non-nil fields of patch.
func (s *Service) UpdateCoinPackage(
	ctx context.Context,
	category domain.Category,
	id string,
	patch domain.CoinPackagePatch,
) (domain.CoinPackage, error) {
	path, err := categoryPath(category, "packages", id)
	if err != nil {
		return domain.CoinPackage{}, err
	}
	resp, err := s.client.Put(ctx, path, patch)
	if err != nil {
		return domain.CoinPackage{}, err
	}
	return apiclient.Unwrap[domain.CoinPackage](resp, fieldPackage)
}

func (s *Service) DeleteCoinPackage(ctx context.Context, category domain.Category, id string) error {
	path, err := categoryPath(category, "packages", id)
	if err != nil {
		return err
	}
	_, err = s.client.Delete(ctx, path)
	return err
}

func (s *Service) UpdateCoinRules(
	ctx context.Context,
	category domain.Category,
	patch domain.CoinRulesPatch,
) (domain.CoinRules, error) {
	path, err := categoryPath(category, "rules")
	if err != nil {
		return domain.CoinRules{}, err
	}
	resp, err := s.client.Put(ctx, path, patch)
	if err != nil {
		return domain.CoinRules{}, err
	}
	return apiclient.Unwrap[domain.CoinRules](resp, fieldRules)
}

func categoryPath(category domain.Category, rest ...string) (string, error) {
	c, err := domain.ParseCategory(string(category))
	if err != nil {
		return "", err
	}
	return apiclient.JoinPath(append([]string{"api", resource, c.String()}, rest...)...), nil
}

var _ domain.CoinPricingGateway = (*Service)(nil)
