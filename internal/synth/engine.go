// Package synth proposes routes for controller methods that have none yet.
// The pipeline runs introspection, diffing, naming and rendering per
// controller, then drops routes whose names would clash.
package synth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Aman-s12345/go-routegen/internal/introspect"
	"github.com/Aman-s12345/go-routegen/internal/registry"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	RootNamespace string
	Introspector  introspect.TypeIntrospector
	IgnoreMethods []string
	Workers       int
	Logger        *slog.Logger
}

type Engine struct {
	introspector introspect.TypeIntrospector
	resolver     *Resolver
	ignore       []string
	workers      int
	logger       *slog.Logger
}

type controllerResult struct {
	controller  string
	description string
	prefix      Prefix
	candidates  []CandidateRoute
	diagnostics []Diagnostic
}

func New(cfg Config) (*Engine, error) {
	if cfg.Introspector == nil {
		return nil, fmt.Errorf("%w: no introspector", ErrConfiguration)
	}
	resolver, err := NewResolver(cfg.RootNamespace)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		introspector: cfg.Introspector,
		resolver:     resolver,
		ignore:       cfg.IgnoreMethods,
		workers:      workers,
		logger:       logger,
	}, nil
}

// Generate proposes routes for every controller without disturbing input
// order. Per-controller and per-method failures become diagnostics; only a
// configuration error aborts the run.
func (e *Engine) Generate(ctx context.Context, controllers []string, snapshot *registry.Snapshot) (*Result, error) {
	if snapshot == nil {
		snapshot = &registry.Snapshot{}
	}
	index := snapshot.MethodIndex()
	controllers = uniqueControllers(controllers)

	results := make([]controllerResult, len(controllers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, fqn := range controllers {
		g.Go(func() error {
			res, err := e.processController(gctx, fqn, index)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := e.assemble(results, snapshot.Names())
	e.logger.Info("generation complete",
		"controllers", len(controllers),
		"groups", len(result.Groups),
		"diagnostics", len(result.Diagnostics))
	return result, nil
}

func (e *Engine) processController(ctx context.Context, fqn string, index registry.MethodIndex) (controllerResult, error) {
	res := controllerResult{controller: fqn}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	desc, err := introspect.Introspect(ctx, e.introspector, fqn, e.ignore)
	if err != nil {
		res.diagnostics = append(res.diagnostics, e.report(Diagnostic{
			Kind:       KindUnresolvableController,
			Controller: fqn,
			Err:        err,
		}))
		return res, nil
	}

	prefix, err := e.resolver.Resolve(desc.FullyQualifiedName, desc.ShortName)
	if err != nil {
		return res, err
	}
	res.controller = desc.FullyQualifiedName
	res.description = desc.Description
	res.prefix = prefix

	missing := Diff(desc, index)
	for _, method := range missing {
		params, err := e.introspector.Parameters(ctx, desc.FullyQualifiedName, method)
		if err != nil {
			res.diagnostics = append(res.diagnostics, e.report(Diagnostic{
				Kind:       KindReflectionError,
				Controller: desc.FullyQualifiedName,
				Method:     method,
				Err:        err,
			}))
			continue
		}

		verb, remainder := Parse(method)
		route := RenderMethod(MethodInput{
			Verb:               verb,
			Remainder:          remainder,
			ParameterSuffix:    BuildSuffix(params),
			RouteNamePrefix:    prefix.Name,
			ShortName:          desc.ShortName,
			MethodName:         method,
			FullyQualifiedName: desc.FullyQualifiedName,
		})
		e.logger.Debug("route synthesized",
			"controller", desc.FullyQualifiedName,
			"method", route.HTTPVerb,
			"path", route.URLPath,
			"name", route.RouteName)
		res.candidates = append(res.candidates, route)
	}

	e.logger.Info("controller processed",
		"controller", desc.FullyQualifiedName,
		"methods", len(desc.Methods),
		"missing", len(missing),
		"prefix", prefix.Path)
	return res, nil
}

// assemble drops colliding routes and builds the groups in input order.
func (e *Engine) assemble(results []controllerResult, existing map[string]registry.RegisteredRoute) *Result {
	byName := make(map[string][]CandidateRoute)
	for _, res := range results {
		for _, route := range res.candidates {
			byName[route.RouteName] = append(byName[route.RouteName], route)
		}
	}

	result := &Result{Groups: []ControllerGroup{}, Diagnostics: []Diagnostic{}}
	reported := make(map[string]bool)
	for _, res := range results {
		result.Diagnostics = append(result.Diagnostics, res.diagnostics...)

		kept := []CandidateRoute{}
		for _, route := range res.candidates {
			if registered, clash := existing[route.RouteName]; clash {
				result.Diagnostics = append(result.Diagnostics, e.report(Diagnostic{
					Kind:       KindRouteNameCollision,
					Controller: route.Controller,
					Method:     route.Method,
					RouteName:  route.RouteName,
					Entries:    []string{registry.ActionLabel(route.Controller, route.Method), registeredEntry(registered)},
					Err:        ErrRouteNameCollision,
				}))
				continue
			}
			if peers := byName[route.RouteName]; len(peers) > 1 {
				if !reported[route.RouteName] {
					reported[route.RouteName] = true
					entries := make([]string, 0, len(peers))
					for _, peer := range peers {
						entries = append(entries, registry.ActionLabel(peer.Controller, peer.Method))
					}
					result.Diagnostics = append(result.Diagnostics, e.report(Diagnostic{
						Kind:       KindRouteNameCollision,
						Controller: route.Controller,
						Method:     route.Method,
						RouteName:  route.RouteName,
						Entries:    entries,
						Err:        ErrRouteNameCollision,
					}))
				}
				continue
			}
			kept = append(kept, route)
		}

		if group, ok := RenderGroup(res.controller, res.prefix.Namespace, res.prefix.Path, kept); ok {
			group.Description = res.description
			result.Groups = append(result.Groups, group)
		}
	}
	return result
}

func (e *Engine) report(d Diagnostic) Diagnostic {
	attrs := []any{"kind", d.Kind, "controller", d.Controller}
	if d.Method != "" {
		attrs = append(attrs, "method", d.Method)
	}
	if d.RouteName != "" {
		attrs = append(attrs, "route", d.RouteName, "entries", d.Entries)
	}
	if d.Err != nil && !errors.Is(d.Err, ErrRouteNameCollision) {
		attrs = append(attrs, "error", d.Err)
	}
	e.logger.Warn("route skipped", attrs...)
	return d
}

// registeredEntry labels a registered route the way candidates are
// labelled: controller@method, falling back to its path for closures.
func registeredEntry(route registry.RegisteredRoute) string {
	_, method := registry.ParseAction(route.Action)
	if controller := route.ControllerName(); controller != "" && method != "" {
		return registry.ActionLabel(controller, method)
	}
	if route.Action != "" {
		return route.Action
	}
	return route.Path
}

// uniqueControllers keeps the first occurrence of every controller name.
func uniqueControllers(controllers []string) []string {
	seen := make(map[string]bool, len(controllers))
	unique := make([]string, 0, len(controllers))
	for _, fqn := range controllers {
		if seen[fqn] {
			continue
		}
		seen[fqn] = true
		unique = append(unique, fqn)
	}
	return unique
}
