package viewmodel_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"shramikadmin/internal/apiclient"
	"shramikadmin/internal/domain"
	"shramikadmin/internal/services/coinpricing"
	"shramikadmin/internal/services/questionset"
	"shramikadmin/internal/services/specialization"
	"shramikadmin/internal/testserver"
	"shramikadmin/internal/viewmodel"
)

type fixture struct {
	srv    *testserver.Server
	client *apiclient.Client
	tokens *testserver.Tokens
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := testserver.New()
	t.Cleanup(srv.Close)
	client, tokens := srv.Client()
	return &fixture{srv: srv, client: client, tokens: tokens}
}

func (f *fixture) specializations() *viewmodel.Specializations {
	return viewmodel.NewSpecializations(specialization.New(f.client), zerolog.Nop())
}

func (f *fixture) questionSets() *viewmodel.QuestionSets {
	return viewmodel.NewQuestionSets(questionset.New(f.client), zerolog.Nop())
}

func (f *fixture) coinPricing() *viewmodel.CoinPricing {
	return viewmodel.NewCoinPricing(coinpricing.New(f.client), zerolog.Nop())
}

// blockingSpecs is a gateway whose list call waits for release.
type blockingSpecs struct {
	domain.SpecializationGateway
	entered chan struct{}
	release chan struct{}
}

func (b *blockingSpecs) ListSpecializations(
	ctx context.Context,
	_ domain.SpecializationStatus,
) ([]domain.Specialization, error) {
	close(b.entered)
	<-b.release
	return []domain.Specialization{{ID: "1", Name: "Mason"}}, nil
}

// blockingPricing is a coin pricing gateway whose fetch waits for release.
type blockingPricing struct {
	domain.CoinPricingGateway
	entered chan struct{}
	release chan struct{}
}

func (b *blockingPricing) GetCoinPricing(ctx context.Context, _ domain.Category) (domain.CoinPricing, error) {
	close(b.entered)
	<-b.release
	return domain.CoinPricing{}, nil
}
