package types

import "time"

// Price is a monetary amount with its ISO currency code.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CoinPackage is a purchasable bundle of coins.
type CoinPackage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Coins     int       `json:"coins"`
	Price     Price     `json:"price"`
	IsVisible bool      `json:"isVisible"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CoinRules holds the per-category coin costs.
type CoinRules struct {
	CoinCostPerApplication int `json:"coinCostPerApplication"`
	CoinPerEmployeeCount   int `json:"coinPerEmployeeCount"`
}

// CoinPricing is the full pricing sheet of one category.
type CoinPricing struct {
	Packages []CoinPackage `json:"packages"`
	Rules    CoinRules     `json:"rules"`
}

// CoinPackagePayload is the body of a package create call. Price is a plain
// amount; the server attaches the currency.
type CoinPackagePayload struct {
	Name      string  `json:"name"`
	Coins     int     `json:"coins"`
	Price     float64 `json:"price"`
	IsVisible *bool   `json:"isVisible,omitempty"`
}

// CoinPackagePatch is the body of a package update call; nil fields are left
// untouched by the server.
type CoinPackagePatch struct {
	Name      *string  `json:"name,omitempty"`
	Coins     *int     `json:"coins,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	IsVisible *bool    `json:"isVisible,omitempty"`
}

// CoinRulesPatch is the body of a rules update call.
type CoinRulesPatch struct {
	CoinCostPerApplication *int `json:"coinCostPerApplication,omitempty"`
	CoinPerEmployeeCount   *int `json:"coinPerEmployeeCount,omitempty"`
}
