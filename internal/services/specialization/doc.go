// Package specialization is the gateway for /api/specializations.
package specialization
