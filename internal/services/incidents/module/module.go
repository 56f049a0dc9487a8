// Package module wires the incidents service
package module

import (
	"net/http"

	"incommand/internal/core/lexicon"
	"incommand/internal/core/priority"
	"incommand/internal/core/version"
	"incommand/internal/modkit"
	"incommand/internal/modkit/httpkit"
	"incommand/internal/modkit/repokit"
	auditdom "incommand/internal/services/audit/domain"
	"incommand/internal/services/incidents/domain"
	"incommand/internal/services/incidents/repo"
	"incommand/internal/services/incidents/service"
)

// Ports exposed by the incidents module
type Ports struct {
	Recorder domain.RecorderPort
	Reader   domain.ReaderPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new incidents module.
// Pass modkit.WithPorts(auditdom.WriterPort) to enable the classification
// audit trail; wiring without it keeps the module functional
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("incidents"),
	}, opts...)...)

	// Audit trail is optional; nil disables it
	audit, _ := b.Ports.(auditdom.WriterPort)

	cfg := FromConfig(deps.Cfg)

	pk, err := lexicon.Load()
	if err != nil {
		panic(err)
	}
	cls := priority.New(pk, version.Classifier)

	svc := service.New(
		repokit.TxRunner(deps.PG),
		repo.NewPG(),
		cls,
		audit,
		service.Config{HardLimit: cfg.HardLimit},
	)

	m := &Module{deps: deps}
	m.ports = Ports{Recorder: svc, Reader: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "incidents" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
