// Package navigation tracks which screen the console is on, its title, and
// redirects requested by lower layers (for example after a 401).
package navigation

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"shramikadmin/internal/domain"
)

// Routes used by the console.
const (
	RouteDashboard       = "/"
	RouteLogin           = "/auth/boxed-signin"
	RouteSpecializations = "/specializations"
	RouteQuestionSets    = "/question-sets"
	RouteCoinPricing     = "/coin-pricing"

	authPrefix = "/auth/"
)

// IsAuthRoute reports whether route belongs to the authentication screens.
func IsAuthRoute(route string) bool {
	return strings.HasPrefix(route, authPrefix)
}

// Router is an in-process stand-in for the browser location.
type Router struct {
	mu      sync.Mutex
	current string
	title   string
	history []string
	log     zerolog.Logger
}

// NewRouter returns a router positioned at the dashboard.
func NewRouter(log zerolog.Logger) *Router {
	return &Router{current: RouteDashboard, log: log}
}

// CurrentRoute returns the active route.
func (r *Router) CurrentRoute() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Enter marks route as active without recording a redirect.
func (r *Router) Enter(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = route
}

// Navigate moves to route and records it as a redirect.
func (r *Router) Navigate(route string) {
	r.mu.Lock()
	from := r.current
	r.current = route
	r.history = append(r.history, route)
	r.mu.Unlock()

	r.log.Info().Str("from", from).Str("to", route).Msg("navigate")
}

// Redirects returns the routes passed to Navigate, oldest first.
func (r *Router) Redirects() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

// SetTitle records the page title.
func (r *Router) SetTitle(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.title = title
}

// Title returns the page title.
func (r *Router) Title() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.title
}

var (
	_ domain.Navigator   = (*Router)(nil)
	_ domain.TitleSetter = (*Router)(nil)
)

// Screen pairs a route with the page title shown while it is active.
type Screen struct {
	Route string
	Title string
}

// Screens of the console.
var (
	ScreenLogin                = Screen{RouteLogin, "Login"}
	ScreenDashboard            = Screen{RouteDashboard, "Dashboard"}
	ScreenSpecializations      = Screen{RouteSpecializations, "Specializations"}
	ScreenCreateSpecialization = Screen{RouteSpecializations + "/create", "Create Specialization"}
	ScreenQuestionSets         = Screen{RouteQuestionSets, "Question Sets"}
	ScreenQuestionSetBuilder   = Screen{RouteQuestionSets + "/builder", "Question Set Builder"}
	ScreenEditQuestionSet      = Screen{RouteQuestionSets + "/builder", "Edit Question Set"}
	ScreenCoinPricing          = Screen{RouteCoinPricing, "Coin Pricing"}
)

// Open enters screen and sets its title.
func (r *Router) Open(s Screen) {
	r.Enter(s.Route)
	r.SetTitle(s.Title)
}
