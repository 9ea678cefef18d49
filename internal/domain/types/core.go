package types

import (
	"errors"
	"fmt"
)

// ErrInvalidCategory is returned when a coin-pricing category is not one of
// the known audiences.
var ErrInvalidCategory = errors.New("invalid coin pricing category")

// SpecializationStatus is the publication state of a specialization.
type SpecializationStatus string

const (
	StatusActive   SpecializationStatus = "Active"
	StatusInactive SpecializationStatus = "Inactive"
)

// String returns the string form of the status.
func (s SpecializationStatus) String() string { return string(s) }

// Valid reports whether s is Active or Inactive.
func (s SpecializationStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Category selects the audience a coin-pricing sheet applies to.
type Category string

const (
	CategoryJobSeeker Category = "jobSeeker"
	CategoryRecruiter Category = "recruiter"
)

// Categories lists the audiences in display order.
var Categories = []Category{CategoryJobSeeker, CategoryRecruiter}

// String returns the wire form of the category.
func (c Category) String() string { return string(c) }

// Label returns the human-readable tab name.
func (c Category) Label() string {
	switch c {
	case CategoryJobSeeker:
		return "Job Seekers"
	case CategoryRecruiter:
		return "Recruiters"
	default:
		return string(c)
	}
}

// ParseCategory validates s against the known categories.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want jobSeeker or recruiter)", ErrInvalidCategory, s)
}
