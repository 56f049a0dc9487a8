// Package module wires the audit service
package module

import (
	"net/http"

	"incommand/internal/modkit"
	"incommand/internal/modkit/httpkit"
	"incommand/internal/services/audit/domain"
	"incommand/internal/services/audit/repo"
	"incommand/internal/services/audit/service"
)

// Ports exposed by the audit module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new audit module; requires deps.CH
func New(deps modkit.Deps) *Module {
	if deps.CH == nil {
		panic("audit module requires a clickhouse store")
	}

	cfg := FromConfig(deps.Cfg)
	svc := service.New(repo.NewCH(deps.CH), service.Config{
		MaxWindowHours: cfg.MaxWindowHours,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Writer: svc, Query: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "audit" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
