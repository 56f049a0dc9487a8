// Package module wires the incidents API using modkit
package module

import (
	"net/http"

	"incommand/internal/core/lexicon"
	"incommand/internal/core/relevance"
	modkit "incommand/internal/modkit"
	"incommand/internal/modkit/httpkit"
	str "incommand/internal/platform/strings"
	"incommand/internal/services/api/incidents/domain"
	incidentshttp "incommand/internal/services/api/incidents/http"
	incidentssvc "incommand/internal/services/api/incidents/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc incidentssvc.Service
}

// New constructs the incidents API module.
// Requires modkit.WithPorts(domain.Ports) carrying the core recorder and reader
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("incidents-api"), modkit.WithPrefix("/incidents")}, opts...)...)

	// Basic guardrails against incorrect wiring
	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("incidents api module: expected WithPorts(incidents/domain.Ports)")
	}
	if ports.Recorder == nil || ports.Reader == nil {
		panic("incidents api module: Ports missing Recorder or Reader")
	}

	pk, err := lexicon.Load()
	if err != nil {
		panic(err)
	}
	svc := incidentssvc.New(ports.Recorder, ports.Reader, relevance.NewScorer(pk))

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptIncidentsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		incidentshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
