package testserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shramikadmin/internal/domain"
)

// Fixed administrator credentials accepted by the login endpoint.
const (
	AdminEmail    = "admin@shramik.test"
	AdminPassword = "s3cret-pass"
	AdminName     = "Console Admin"
	defaultTTL    = time.Hour
	currency      = "INR"
)

type cannedResponse struct {
	status int
	body   string
}

type sheet struct {
	packages []domain.CoinPackage
	rules    domain.CoinRules
}

// Server is the fake API.
type Server struct {
	e   *echo.Echo
	srv *httptest.Server

	requests atomic.Int64

	mu       sync.Mutex
	secret   []byte
	ttl      time.Duration
	specs    []domain.Specialization
	sets     []storedSet
	pricing  map[domain.Category]*sheet
	canned   []cannedResponse
	admin    domain.User
	lastBody map[string][]byte
}

// storedSet keeps specialization ids unpopulated, as the database would.
type storedSet struct {
	ID        string
	Name      string
	SpecIDs   []string
	Questions []domain.Question
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Option configures the server.
type Option func(*Server)

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(d time.Duration) Option {
	return func(s *Server) { s.ttl = d }
}

// New starts a server. Call Close when done.
func New(opts ...Option) *Server {
	s := &Server{
		secret: newSecret(),
		ttl:    defaultTTL,
		pricing: map[domain.Category]*sheet{
			domain.CategoryJobSeeker: {},
			domain.CategoryRecruiter: {},
		},
		admin: domain.User{
			ID:    uuid.NewString(),
			Name:  AdminName,
			Email: AdminEmail,
			Phone: "+910000000000",
			Role:  "admin",
		},
		lastBody: map[string][]byte{},
	}
	for _, opt := range opts {
		opt(s)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(s.count, s.replay)
	s.routes(e)
	s.e = e
	s.srv = httptest.NewServer(e)
	return s
}

// URL is the base URL of the server.
func (s *Server) URL() string { return s.srv.URL }

// Close stops the listener.
func (s *Server) Close() { s.srv.Close() }

// Requests returns how many requests the server has received.
func (s *Server) Requests() int64 { return s.requests.Load() }

// ServeNext queues a canned reply for the next request, whatever its route.
func (s *Server) ServeNext(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canned = append(s.canned, cannedResponse{status: status, body: body})
}

// RevokeTokens rotates the signing secret so every issued token fails.
func (s *Server) RevokeTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secret = newSecret()
}

// LastBody returns the raw body of the most recent request with the given
// method and path.
func (s *Server) LastBody(method, path string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastBody[method+" "+path]
}

func (s *Server) routes(e *echo.Echo) {
	e.POST("/api/auth/login", s.login)

	api := e.Group("/api", s.authenticate)

	api.GET("/specializations", s.listSpecializations)
	api.GET("/specializations/:id", s.getSpecialization)
	api.POST("/specializations", s.createSpecialization)
	api.PUT("/specializations/:id", s.updateSpecialization)
	api.DELETE("/specializations/:id", s.deleteSpecialization)

	api.GET("/question-sets", s.listQuestionSets)
	api.GET("/question-sets/:id", s.getQuestionSet)
	api.POST("/question-sets", s.createQuestionSet)
	api.PUT("/question-sets/:id", s.updateQuestionSet)
	api.DELETE("/question-sets/:id", s.deleteQuestionSet)

	api.GET("/coin-pricing/:category", s.getPricing)
	api.POST("/coin-pricing/:category/packages", s.createPackage)
	api.PUT("/coin-pricing/:category/packages/:id", s.updatePackage)
	api.DELETE("/coin-pricing/:category/packages/:id", s.deletePackage)
	api.PUT("/coin-pricing/:category/rules", s.updateRules)
}

func (s *Server) count(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.requests.Add(1)
		return next(c)
	}
}

func (s *Server) replay(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		if len(s.canned) == 0 {
			s.mu.Unlock()
			return next(c)
		}
		r := s.canned[0]
		s.canned = s.canned[1:]
		s.mu.Unlock()
		return c.Blob(r.status, echo.MIMEApplicationJSONCharsetUTF8, []byte(r.body))
	}
}

// authenticate mirrors the "protect" middleware of the real API.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return fail(c, http.StatusUnauthorized, "Not authorized, no token")
		}
		if _, err := s.parseToken(raw); err != nil {
			return fail(c, http.StatusUnauthorized, "Not authorized, token failed")
		}
		return next(c)
	}
}

// IssueToken signs a token for the administrator without a login call.
func (s *Server) IssueToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, _ := s.signLocked(time.Now().Add(s.ttl))
	return tok
}

// Admin returns the profile returned on login.
func (s *Server) Admin() domain.User { return s.admin }

func (s *Server) signLocked(exp time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   s.admin.ID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) parseToken(raw string) (*jwt.Token, error) {
	s.mu.Lock()
	secret := s.secret
	s.mu.Unlock()
	return jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
}

func newSecret() []byte {
	return []byte(uuid.NewString() + uuid.NewString())
}

// ok writes the success envelope.
func ok(c echo.Context, status int, message string, data any) error {
	body := map[string]any{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	return c.JSON(status, body)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{"success": false, "message": message})
}

func (s *Server) recordBody(c echo.Context, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastBody[c.Request().Method+" "+c.Request().URL.Path] = body
}
