package domain

import (
	interfaces "shramikadmin/internal/domain/interfaces"
	types "shramikadmin/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SpecializationStatus  = types.SpecializationStatus
	Category              = types.Category
	Specialization        = types.Specialization
	SpecializationPayload = types.SpecializationPayload
	SpecializationRef     = types.SpecializationRef
	Option                = types.Option
	Question              = types.Question
	QuestionSet           = types.QuestionSet
	QuestionSetPayload    = types.QuestionSetPayload
	Price                 = types.Price
	CoinPackage           = types.CoinPackage
	CoinRules             = types.CoinRules
	CoinPricing           = types.CoinPricing
	CoinPackagePayload    = types.CoinPackagePayload
	CoinPackagePatch      = types.CoinPackagePatch
	CoinRulesPatch        = types.CoinRulesPatch
	User                  = types.User
	Session               = types.Session
	LoginRequest          = types.LoginRequest
	LoginResponse         = types.LoginResponse
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyValueStore         = interfaces.KeyValueStore
	TokenSource           = interfaces.TokenSource
	Navigator             = interfaces.Navigator
	TitleSetter           = interfaces.TitleSetter
	AuthGateway           = interfaces.AuthGateway
	SpecializationGateway = interfaces.SpecializationGateway
	QuestionSetGateway    = interfaces.QuestionSetGateway
	CoinPricingGateway    = interfaces.CoinPricingGateway
)

// Re-exported constants and helpers.
const (
	StatusActive      = types.StatusActive
	StatusInactive    = types.StatusInactive
	CategoryJobSeeker = types.CategoryJobSeeker
	CategoryRecruiter = types.CategoryRecruiter
)

var (
	ErrInvalidCategory = types.ErrInvalidCategory
	Categories         = types.Categories
	ParseCategory      = types.ParseCategory
)
