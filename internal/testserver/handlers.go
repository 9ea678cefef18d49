package testserver

import (
	"encoding/json"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shramikadmin/internal/domain"
)

func (s *Server) bind(c echo.Context, v any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	s.recordBody(c, body)
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}

func (s *Server) login(c echo.Context) error {
	var req domain.LoginRequest
	if err := s.bind(c, &req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "Please provide email and password")
	}
	if !strings.EqualFold(req.Email, AdminEmail) || req.Password != AdminPassword {
		return fail(c, http.StatusUnauthorized, "Invalid email or password")
	}

	s.mu.Lock()
	tok, err := s.signLocked(time.Now().Add(s.ttl))
	s.mu.Unlock()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Could not issue token")
	}
	return ok(c, http.StatusOK, "Login successful", domain.Session{Token: tok, User: s.admin})
}

// --- specializations ---

func (s *Server) listSpecializations(c echo.Context) error {
	status := domain.SpecializationStatus(c.QueryParam("status"))

	s.mu.Lock()
	out := make([]domain.Specialization, 0, len(s.specs))
	for _, sp := range s.specs {
		if status == "" || sp.Status == status {
			out = append(out, sp)
		}
	}
	s.mu.Unlock()

	return ok(c, http.StatusOK, "", map[string]any{"specializations": out})
}

func (s *Server) getSpecialization(c echo.Context) error {
	s.mu.Lock()
	i := s.specIndexLocked(c.Param("id"))
	var sp domain.Specialization
	if i >= 0 {
		sp = s.specs[i]
	}
	s.mu.Unlock()

	if i < 0 {
		return fail(c, http.StatusNotFound, "Specialization not found")
	}
	return ok(c, http.StatusOK, "", map[string]any{"specialization": sp})
}

func (s *Server) createSpecialization(c echo.Context) error {
	var p domain.SpecializationPayload
	if err := s.bind(c, &p); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fail(c, http.StatusBadRequest, "Specialization name is required")
	}
	if p.Status != "" && !p.Status.Valid() {
		return fail(c, http.StatusBadRequest, "Invalid status")
	}
	sp := s.SeedSpecialization(domain.Specialization{
		Name:   strings.TrimSpace(p.Name),
		Status: p.Status,
		Skills: p.Skills,
	})
	return ok(c, http.StatusCreated, "Specialization created successfully",
		map[string]any{"specialization": sp})
}

func (s *Server) updateSpecialization(c echo.Context) error {
	var p domain.SpecializationPayload
	if err := s.bind(c, &p); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if p.Status != "" && !p.Status.Valid() {
		return fail(c, http.StatusBadRequest, "Invalid status")
	}

	s.mu.Lock()
	i := s.specIndexLocked(c.Param("id"))
	if i < 0 {
		s.mu.Unlock()
		return fail(c, http.StatusNotFound, "Specialization not found")
	}
	sp := &s.specs[i]
	if name := strings.TrimSpace(p.Name); name != "" {
		sp.Name = name
	}
	if p.Status != "" {
		sp.Status = p.Status
	}
	if p.Skills != nil {
		sp.Skills = p.Skills
	}
	sp.UpdatedAt = time.Now().UTC()
	out := *sp
	s.mu.Unlock()

	return ok(c, http.StatusOK, "Specialization updated successfully",
		map[string]any{"specialization": out})
}

func (s *Server) deleteSpecialization(c echo.Context) error {
	s.mu.Lock()
	i := s.specIndexLocked(c.Param("id"))
	if i >= 0 {
		s.specs = slices.Delete(s.specs, i, i+1)
	}
	s.mu.Unlock()

	if i < 0 {
		return fail(c, http.StatusNotFound, "Specialization not found")
	}
	return ok(c, http.StatusOK, "Specialization deleted successfully", map[string]any{})
}

func (s *Server) specIndexLocked(id string) int {
	return slices.IndexFunc(s.specs, func(sp domain.Specialization) bool { return sp.ID == id })
}

// --- question sets ---

func (s *Server) listQuestionSets(c echo.Context) error {
	s.mu.Lock()
	out := make([]domain.QuestionSet, 0, len(s.sets))
	for _, qs := range s.sets {
		out = append(out, s.populateLocked(qs))
	}
	s.mu.Unlock()

	return ok(c, http.StatusOK, "", map[string]any{"questionSets": out})
}

func (s *Server) getQuestionSet(c echo.Context) error {
	s.mu.Lock()
	i := s.setIndexLocked(c.Param("id"))
	var qs domain.QuestionSet
	if i >= 0 {
		qs = s.populateLocked(s.sets[i])
	}
	s.mu.Unlock()

	if i < 0 {
		return fail(c, http.StatusNotFound, "Question set not found")
	}
	return ok(c, http.StatusOK, "", map[string]any{"questionSet": qs})
}

func (s *Server) createQuestionSet(c echo.Context) error {
	var p domain.QuestionSetPayload
	if err := s.bind(c, &p); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if msg := s.checkQuestionSet(p); msg != "" {
		return fail(c, http.StatusBadRequest, msg)
	}

	now := time.Now().UTC()
	s.mu.Lock()
	stored := storedSet{
		ID:        uuid.NewString(),
		Name:      p.Name,
		SpecIDs:   p.SpecializationIDs,
		Questions: p.Questions,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sets = append(s.sets, stored)
	out := s.populateLocked(stored)
	s.mu.Unlock()

	return ok(c, http.StatusCreated, "Question set created successfully",
		map[string]any{"questionSet": out})
}

func (s *Server) updateQuestionSet(c echo.Context) error {
	var p domain.QuestionSetPayload
	if err := s.bind(c, &p); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if msg := s.checkQuestionSet(p); msg != "" {
		return fail(c, http.StatusBadRequest, msg)
	}

	s.mu.Lock()
	i := s.setIndexLocked(c.Param("id"))
	if i < 0 {
		s.mu.Unlock()
		return fail(c, http.StatusNotFound, "Question set not found")
	}
	qs := &s.sets[i]
	if p.Name != "" {
		qs.Name = p.Name
	}
	qs.SpecIDs = p.SpecializationIDs
	qs.Questions = p.Questions
	qs.UpdatedAt = time.Now().UTC()
	out := s.populateLocked(*qs)
	s.mu.Unlock()

	return ok(c, http.StatusOK, "Question set updated successfully",
		map[string]any{"questionSet": out})
}

func (s *Server) deleteQuestionSet(c echo.Context) error {
	s.mu.Lock()
	i := s.setIndexLocked(c.Param("id"))
	if i >= 0 {
		s.sets = slices.Delete(s.sets, i, i+1)
	}
	s.mu.Unlock()

	if i < 0 {
		return fail(c, http.StatusNotFound, "Question set not found")
	}
	return ok(c, http.StatusOK, "Question set deleted successfully", map[string]any{})
}

func (s *Server) checkQuestionSet(p domain.QuestionSetPayload) string {
	if len(p.SpecializationIDs) == 0 {
		return "At least one specialization is required"
	}
	if len(p.Questions) == 0 {
		return "At least one question is required"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range p.SpecializationIDs {
		if s.specIndexLocked(id) < 0 {
			return "Specialization not found: " + id
		}
	}
	return ""
}

func (s *Server) setIndexLocked(id string) int {
	return slices.IndexFunc(s.sets, func(qs storedSet) bool { return qs.ID == id })
}

// populateLocked expands specialization ids into references, dropping ids
// that no longer resolve.
func (s *Server) populateLocked(qs storedSet) domain.QuestionSet {
	refs := make([]domain.SpecializationRef, 0, len(qs.SpecIDs))
	for _, id := range qs.SpecIDs {
		if i := s.specIndexLocked(id); i >= 0 {
			sp := s.specs[i]
			refs = append(refs, domain.SpecializationRef{
				ID:     sp.ID,
				Name:   sp.Name,
				Status: sp.Status,
				Skills: sp.Skills,
			})
		}
	}
	questions := qs.Questions
	if questions == nil {
		questions = []domain.Question{}
	}
	return domain.QuestionSet{
		ID:                qs.ID,
		Name:              qs.Name,
		SpecializationIDs: refs,
		Questions:         questions,
		TotalQuestions:    len(questions),
		CreatedAt:         qs.CreatedAt,
		UpdatedAt:         qs.UpdatedAt,
	}
}

// --- coin pricing ---

func (s *Server) sheetFor(c echo.Context) (*sheet, bool) {
	cat, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		return nil, false
	}
	return s.pricing[cat], true
}

func (s *Server) getPricing(c echo.Context) error {
	s.mu.Lock()
	sh, found := s.sheetFor(c)
	var data map[string]any
	if found {
		data = map[string]any{
			"packages": slices.Clone(sh.packages),
			"rules":    sh.rules,
		}
	}
	s.mu.Unlock()

	if !found {
		return fail(c, http.StatusBadRequest, "Invalid category")
	}
	return ok(c, http.StatusOK, "", data)
}

type packageBody struct {
	Name      *string  `json:"name"`
	Coins     *int     `json:"coins"`
	Price     *float64 `json:"price"`
	IsVisible *bool    `json:"isVisible"`
}

func (s *Server) createPackage(c echo.Context) error {
	var b packageBody
	if err := s.bind(c, &b); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if b.Name == nil || strings.TrimSpace(*b.Name) == "" || b.Coins == nil || b.Price == nil {
		return fail(c, http.StatusBadRequest, "Name, coins and price are required")
	}
	if *b.Coins <= 0 || *b.Price <= 0 {
		return fail(c, http.StatusBadRequest, "Coins and price must be positive")
	}

	cat, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid category")
	}

	visible := true
	if b.IsVisible != nil {
		visible = *b.IsVisible
	}
	pkg := s.SeedPackage(cat, domain.CoinPackage{
		Name:      strings.TrimSpace(*b.Name),
		Coins:     *b.Coins,
		Price:     domain.Price{Amount: *b.Price},
		IsVisible: visible,
	})
	return ok(c, http.StatusCreated, "Package created successfully", map[string]any{"package": pkg})
}

func (s *Server) updatePackage(c echo.Context) error {
	var b packageBody
	if err := s.bind(c, &b); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if (b.Coins != nil && *b.Coins <= 0) || (b.Price != nil && *b.Price <= 0) {
		return fail(c, http.StatusBadRequest, "Coins and price must be positive")
	}

	s.mu.Lock()
	sh, found := s.sheetFor(c)
	if !found {
		s.mu.Unlock()
		return fail(c, http.StatusBadRequest, "Invalid category")
	}
	i := packageIndex(sh.packages, c.Param("id"))
	if i < 0 {
		s.mu.Unlock()
		return fail(c, http.StatusNotFound, "Package not found")
	}
	p := &sh.packages[i]
	if b.Name != nil && strings.TrimSpace(*b.Name) != "" {
		p.Name = strings.TrimSpace(*b.Name)
	}
	if b.Coins != nil {
		p.Coins = *b.Coins
	}
	if b.Price != nil {
		p.Price.Amount = *b.Price
	}
	if b.IsVisible != nil {
		p.IsVisible = *b.IsVisible
	}
	p.UpdatedAt = time.Now().UTC()
	out := *p
	s.mu.Unlock()

	return ok(c, http.StatusOK, "Package updated successfully", map[string]any{"package": out})
}

func (s *Server) deletePackage(c echo.Context) error {
	s.mu.Lock()
	sh, found := s.sheetFor(c)
	i := -1
	if found {
		if i = packageIndex(sh.packages, c.Param("id")); i >= 0 {
			sh.packages = slices.Delete(sh.packages, i, i+1)
		}
	}
	s.mu.Unlock()

	switch {
	case !found:
		return fail(c, http.StatusBadRequest, "Invalid category")
	case i < 0:
		return fail(c, http.StatusNotFound, "Package not found")
	}
	return ok(c, http.StatusOK, "Package deleted successfully", map[string]any{})
}

func (s *Server) updateRules(c echo.Context) error {
	var patch domain.CoinRulesPatch
	if err := s.bind(c, &patch); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if (patch.CoinCostPerApplication != nil && *patch.CoinCostPerApplication < 0) ||
		(patch.CoinPerEmployeeCount != nil && *patch.CoinPerEmployeeCount < 0) {
		return fail(c, http.StatusBadRequest, "Rules must not be negative")
	}

	s.mu.Lock()
	sh, found := s.sheetFor(c)
	var out domain.CoinRules
	if found {
		if patch.CoinCostPerApplication != nil {
			sh.rules.CoinCostPerApplication = *patch.CoinCostPerApplication
		}
		if patch.CoinPerEmployeeCount != nil {
			sh.rules.CoinPerEmployeeCount = *patch.CoinPerEmployeeCount
		}
		out = sh.rules
	}
	s.mu.Unlock()

	if !found {
		return fail(c, http.StatusBadRequest, "Invalid category")
	}
	return ok(c, http.StatusOK, "Rules updated successfully", map[string]any{"rules": out})
}

func packageIndex(pkgs []domain.CoinPackage, id string) int {
	return slices.IndexFunc(pkgs, func(p domain.CoinPackage) bool { return p.ID == id })
}
