package testserver

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"shramikadmin/internal/domain"
)

// SeedSpecialization stores sp and returns it as the API would. Empty ID,
// status and timestamps are filled in.
func (s *Server) SeedSpecialization(sp domain.Specialization) domain.Specialization {
	now := time.Now().UTC()
	if sp.ID == "" {
		sp.ID = uuid.NewString()
	}
	if sp.Status == "" {
		sp.Status = domain.StatusActive
	}
	if sp.Skills == nil {
		sp.Skills = []string{}
	}
	if sp.CreatedAt.IsZero() {
		sp.CreatedAt = now
	}
	if sp.UpdatedAt.IsZero() {
		sp.UpdatedAt = sp.CreatedAt
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.specs = append(s.specs, sp)
	return sp
}

// SeedQuestionSet stores a set referencing the given specialization ids.
func (s *Server) SeedQuestionSet(name string, specIDs []string, questions ...domain.Question) domain.QuestionSet {
	now := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	qs := storedSet{
		ID:        uuid.NewString(),
		Name:      name,
		SpecIDs:   specIDs,
		Questions: questions,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sets = append(s.sets, qs)
	return s.populateLocked(qs)
}

// SeedPackage stores p in the category's sheet. Empty ID, currency and
// timestamps are filled in.
func (s *Server) SeedPackage(cat domain.Category, p domain.CoinPackage) domain.CoinPackage {
	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Price.Currency == "" {
		p.Price.Currency = currency
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sh := s.pricing[cat]
	sh.packages = append(sh.packages, p)
	return p
}

// SetRules replaces the category's rules.
func (s *Server) SetRules(cat domain.Category, r domain.CoinRules) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pricing[cat].rules = r
}

// Specializations returns a snapshot of the stored specializations.
func (s *Server) Specializations() []domain.Specialization {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.specs)
}

// Packages returns a snapshot of the category's packages in storage order.
func (s *Server) Packages(cat domain.Category) []domain.CoinPackage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.pricing[cat].packages)
}

// Rules returns the category's rules.
func (s *Server) Rules(cat domain.Category) domain.CoinRules {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pricing[cat].rules
}
