package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"shramikadmin/internal/apiclient"
	"shramikadmin/internal/app"
	"shramikadmin/internal/domain"
	"shramikadmin/internal/navigation"
	"shramikadmin/internal/testserver"
)

func newWire(t *testing.T, srv *testserver.Server, mutate func(*app.Config)) *app.Wire {
	t.Helper()
	cfg := app.Config{APIURL: srv.URL(), Home: t.TempDir()}
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := app.NewWire(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("wire: %v", err)
	}
	return w
}

func TestWire_SessionFlowsIntoRequests(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	srv.SeedSpecialization(domain.Specialization{Name: "Tiler"})
	w := newWire(t, srv, nil)

	if err := w.Session.Login(domain.Session{Token: srv.IssueToken(), User: srv.Admin()}); err != nil {
		t.Fatal(err)
	}
	vm := w.SpecializationsView()
	if err := vm.Load(context.Background(), ""); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(vm.Items()) != 1 {
		t.Fatalf("items = %v", vm.Items())
	}
}

func TestWire_UnauthorizedClearsStoredSession(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	w := newWire(t, srv, func(c *app.Config) { c.SessionPassphrase = "correct horse" })

	if err := w.Session.Login(domain.Session{Token: "not-a-valid-token", User: srv.Admin()}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(w.Storage.Path(), ".enc") {
		t.Fatalf("expected sealed storage, got %s", w.Storage.Path())
	}
	w.Router.Open(navigation.ScreenCoinPricing)

	err := w.CoinPricingView().Load(context.Background())
	if !errors.Is(err, apiclient.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if w.Session.Token() != "" {
		t.Fatal("token not cleared")
	}
	if !w.SessionRevoked() {
		t.Fatalf("redirects = %v", w.Router.Redirects())
	}
}

func TestWire_WriteMetrics(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	out := filepath.Join(t.TempDir(), "metrics.prom")
	w := newWire(t, srv, func(c *app.Config) { c.MetricsFile = out })

	_ = w.QuestionSetsView().Load(context.Background())
	if err := w.WriteMetrics(); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `shramikadmin_api_requests_total{code="401",method="GET"} 1`) {
		t.Fatalf("metrics missing request counter:\n%s", b)
	}
}

func TestWire_WithoutAPIURLBuildsLocalParts(t *testing.T) {
	w, err := app.NewWire(app.Config{Home: t.TempDir()}, zerolog.Nop())
	if err != nil {
		t.Fatalf("wire: %v", err)
	}
	if w.Client != nil || w.Auth != nil {
		t.Fatal("client and gateways must stay nil without an API URL")
	}
	if _, err := w.Session.Current(); err == nil {
		t.Fatal("expected no session")
	}
	if w.SessionRevoked() {
		t.Fatal("nothing was revoked")
	}
}
