// Package coinpricing is the gateway for /api/coin-pricing/{category}.
//
// Every call validates the category locally and fails with
// domain.ErrInvalidCategory before touching the network.
package coinpricing
