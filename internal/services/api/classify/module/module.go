// Package module wires classify into the API using modkit
package module

import (
	"net/http"

	"incommand/internal/core/lexicon"
	"incommand/internal/core/priority"
	"incommand/internal/core/version"
	modkit "incommand/internal/modkit"
	"incommand/internal/modkit/httpkit"
	str "incommand/internal/platform/strings"
	classifyhttp "incommand/internal/services/api/classify/http"
	classifysvc "incommand/internal/services/api/classify/service"
	auditdom "incommand/internal/services/audit/domain"
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

	svc classifysvc.Service
}

// New constructs a classify module with the provided dependencies and options.
// Pass modkit.WithPorts(auditdom.WriterPort) to trace adhoc classifications
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("classify"), modkit.WithPrefix("/classify")}, opts...)...)

	audit, _ := b.Ports.(auditdom.WriterPort)

	pk, err := lexicon.Load()
	if err != nil {
		panic(err)
	}
	svc := classifysvc.New(priority.New(pk, version.Classifier), audit)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptClassifyPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		classifyhttp.Register(r, m.svc)
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
