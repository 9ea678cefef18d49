package interfaces

import (
	"context"

	domaintypes "shramikadmin/internal/domain/types"
)

// AuthGateway performs the login call.
type AuthGateway interface {
	Login(ctx context.Context, req domaintypes.LoginRequest) (domaintypes.LoginResponse, error)
}

// SpecializationGateway is CRUD over /api/specializations.
type SpecializationGateway interface {
	ListSpecializations(
		ctx context.Context,
		status domaintypes.SpecializationStatus,
	) ([]domaintypes.Specialization, error)
	GetSpecialization(ctx context.Context, id string) (domaintypes.Specialization, error)
	CreateSpecialization(
		ctx context.Context,
		payload domaintypes.SpecializationPayload,
	) (domaintypes.Specialization, error)
	UpdateSpecialization(
		ctx context.Context,
		id string,
		payload domaintypes.SpecializationPayload,
	) (domaintypes.Specialization, error)
	DeleteSpecialization(ctx context.Context, id string) error
}

// QuestionSetGateway is CRUD over /api/question-sets.
type QuestionSetGateway interface {
	ListQuestionSets(ctx context.Context) ([]domaintypes.QuestionSet, error)
	GetQuestionSet(ctx context.Context, id string) (domaintypes.QuestionSet, error)
	CreateQuestionSet(
		ctx context.Context,
		payload domaintypes.QuestionSetPayload,
	) (domaintypes.QuestionSet, error)
	UpdateQuestionSet(
		ctx context.Context,
		id string,
		payload domaintypes.QuestionSetPayload,
	) (domaintypes.QuestionSet, error)
	DeleteQuestionSet(ctx context.Context, id string) error
}

// CoinPricingGateway reads and edits the pricing sheet of a category.
type CoinPricingGateway interface {
	GetCoinPricing(ctx context.Context, category domaintypes.Category) (domaintypes.CoinPricing, error)
	CreateCoinPackage(
		ctx context.Context,
		category domaintypes.Category,
		payload domaintypes.CoinPackagePayload,
	) (domaintypes.CoinPackage, error)
	UpdateCoinPackage(
		ctx context.Context,
		category domaintypes.Category,
		id string,
		patch domaintypes.CoinPackagePatch,
	) (domaintypes.CoinPackage, error)
	DeleteCoinPackage(ctx context.Context, category domaintypes.Category, id string) error
	UpdateCoinRules(
		ctx context.Context,
		category domaintypes.Category,
		patch domaintypes.CoinRulesPatch,
	) (domaintypes.CoinRules, error)
}
