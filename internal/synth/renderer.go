package synth

import (
	"strings"

	"github.com/Aman-s12345/go-routegen/internal/registry"
)

// RenderMethod assembles the route for one method. The route name keeps the
// full method name, verb included, while the path drops the verb.
func RenderMethod(in MethodInput) CandidateRoute {
	return CandidateRoute{
		HTTPVerb:    strings.ToLower(in.Verb),
		URLPath:     "/" + strings.ToLower(in.Remainder) + in.ParameterSuffix,
		RouteName:   in.RouteNamePrefix + ControllerSlug(in.ShortName) + "." + strings.ToLower(in.MethodName),
		ActionLabel: registry.ActionLabel(in.ShortName, in.MethodName),
		Controller:  in.FullyQualifiedName,
		Method:      in.MethodName,
	}
}

// RenderGroup wraps the routes of one controller. It reports false when
// there is nothing to emit.
func RenderGroup(controller, namespace, prefix string, candidates []CandidateRoute) (ControllerGroup, bool) {
	if len(candidates) == 0 {
		return ControllerGroup{}, false
	}
	routes := make([]CandidateRoute, len(candidates))
	copy(routes, candidates)
	return ControllerGroup{
		Controller:        controller,
		NamespaceFragment: namespace,
		PathPrefix:        prefix,
		Routes:            routes,
	}, true
}

// Registered converts groups into the routes the host application will
// report once the generated text is committed.
func Registered(groups []ControllerGroup) []registry.RegisteredRoute {
	routes := []registry.RegisteredRoute{}
	for _, group := range groups {
		for _, route := range group.Routes {
			routes = append(routes, registry.RegisteredRoute{
				Name:       route.RouteName,
				Path:       joinPath(group.PathPrefix, route.URLPath),
				Controller: group.Controller,
				Action:     route.ActionLabel,
				HTTPMethod: strings.ToUpper(route.HTTPVerb),
			})
		}
	}
	return routes
}

func joinPath(prefix, path string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return path
	}
	return "/" + prefix + path
}
