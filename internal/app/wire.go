package app

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"shramikadmin/internal/apiclient"
	"shramikadmin/internal/domain"
	"shramikadmin/internal/navigation"
	authsvc "shramikadmin/internal/services/auth"
	coinpricingsvc "shramikadmin/internal/services/coinpricing"
	questionsetsvc "shramikadmin/internal/services/questionset"
	specializationsvc "shramikadmin/internal/services/specialization"
	"shramikadmin/internal/session"
	"shramikadmin/internal/store"
	"shramikadmin/internal/viewmodel"
)

// Wire bundles the stores, clients, gateways and view-models for the CLI.
type Wire struct {
	Config   Config
	Log      zerolog.Logger
	Storage  *store.FileKVStore
	Session  *session.Manager
	Router   *navigation.Router
	Registry *prometheus.Registry
	Client   *apiclient.Client

	Auth            domain.AuthGateway
	Specializations domain.SpecializationGateway
	QuestionSets    domain.QuestionSetGateway
	CoinPricing     domain.CoinPricingGateway
}

// NewWire constructs the dependency graph from cfg. Without an API URL only
// the local parts are built: Client and the gateways stay nil.
func NewWire(cfg Config, log zerolog.Logger) (*Wire, error) {
	// Session storage, sealed when a passphrase is configured
	var kv *store.FileKVStore
	if cfg.SessionPassphrase != "" {
		kv = store.NewSealedKVStore(cfg.Home, cfg.SessionPassphrase)
	} else {
		kv = store.NewFileKVStore(cfg.Home)
	}
	sessions := session.New(kv, log)
	router := navigation.NewRouter(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	w := &Wire{
		Config:   cfg,
		Log:      log,
		Storage:  kv,
		Session:  sessions,
		Router:   router,
		Registry: reg,
	}
	if cfg.APIURL == "" {
		return w, nil
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	client, err := apiclient.New(cfg.APIURL, sessions,
		apiclient.WithHTTPClient(httpClient),
		apiclient.WithNavigator(router),
		apiclient.WithMetrics(apiclient.NewMetrics(reg)),
		apiclient.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	w.Client = client
	w.Auth = authsvc.New(client)
	w.Specializations = specializationsvc.New(client)
	w.QuestionSets = questionsetsvc.New(client)
	w.CoinPricing = coinpricingsvc.New(client)
	return w, nil
}

// SpecializationsView returns a fresh view-model for the specializations screen.
func (w *Wire) SpecializationsView() *viewmodel.Specializations {
	return viewmodel.NewSpecializations(w.Specializations, w.Log)
}

// QuestionSetsView returns a fresh view-model for the question sets screen.
func (w *Wire) QuestionSetsView() *viewmodel.QuestionSets {
	return viewmodel.NewQuestionSets(w.QuestionSets, w.Log)
}

// CoinPricingView returns a fresh view-model for the coin pricing screen.
func (w *Wire) CoinPricingView() *viewmodel.CoinPricing {
	return viewmodel.NewCoinPricing(w.CoinPricing, w.Log)
}
