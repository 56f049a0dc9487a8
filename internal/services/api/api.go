// Package api provides the HTTP API for the application
package api

import (
	"incommand/internal/platform/config"
	"incommand/internal/platform/logger"
	phttp "incommand/internal/platform/net/http"
	"incommand/internal/platform/store"

	"incommand/internal/modkit"
	"incommand/internal/modkit/httpkit"
	"incommand/internal/modkit/module"
	"incommand/internal/modkit/swaggerkit"

	classifymod "incommand/internal/services/api/classify/module"
	apiincidentsdom "incommand/internal/services/api/incidents/domain"
	apiincidentsmod "incommand/internal/services/api/incidents/module"
	metamod "incommand/internal/services/api/meta/module"
	statsmod "incommand/internal/services/api/stats/module"
	auditmod "incommand/internal/services/audit/module"

	// Core incidents module (owns the Recorder and Reader ports)
	incidentsmod "incommand/internal/services/incidents/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// The audit trail rides on clickhouse and stays off when CH is disabled
	var auditPorts auditmod.Ports
	mods := []module.Module{
		metamod.New(deps),
	}
	if deps.CH != nil {
		audit := auditmod.New(deps)
		auditPorts = module.MustPortsOf[auditmod.Ports](audit)
		mods = append(mods, audit)
	}

	// Core incidents module first; the API module extracts its ports
	var incOpts []modkit.Option
	if auditPorts.Writer != nil {
		incOpts = append(incOpts, modkit.WithPorts(auditPorts.Writer))
	}
	incidents := incidentsmod.New(deps, incOpts...)
	incPorts := module.MustPortsOf[incidentsmod.Ports](incidents)

	// API incidents module depends on the core recorder and reader
	apiIncidents := apiincidentsmod.New(
		deps,
		modkit.WithPorts(apiincidentsdom.Ports{
			Recorder: incPorts.Recorder,
			Reader:   incPorts.Reader,
		}),
	)

	var classifyOpts []modkit.Option
	if auditPorts.Writer != nil {
		classifyOpts = append(classifyOpts, modkit.WithPorts(auditPorts.Writer))
	}

	var statsOpts []modkit.Option
	if auditPorts.Query != nil {
		statsOpts = append(statsOpts, modkit.WithPorts(auditPorts.Query))
	}

	mods = append(mods,
		incidents, // include the worker-side module so its ports are registered
		apiIncidents,
		classifymod.New(deps, classifyOpts...),
		statsmod.New(deps, statsOpts...),
	)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
