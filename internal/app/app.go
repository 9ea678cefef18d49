package app

import (
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"shramikadmin/internal/navigation"
)

// WriteMetrics writes the registry to the configured metrics file in the
// Prometheus text format. It does nothing when no file is configured.
func (w *Wire) WriteMetrics() error {
	if w.Config.MetricsFile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(w.Config.MetricsFile, w.Registry)
}

// SessionRevoked reports whether the adapter sent the console to the login
// screen during this run, which happens when the API answers 401.
func (w *Wire) SessionRevoked() bool {
	return slices.Contains(w.Router.Redirects(), navigation.RouteLogin)
}
