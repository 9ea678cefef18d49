// Package domain defines the admin console's data models and the contracts
// between its layers. It contains plain types (wire/state) and interfaces only.
package domain
