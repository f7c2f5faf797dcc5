// Package registry holds the snapshot of routes the host application has
// already registered, and the lookups derived from it.
package registry

import "strings"

const actionSeparator = "@"

// ParseAction splits an action label such as "UserController@getProfile".
// Labels without a separator name a closure or a plain handler and have no
// controller.
func ParseAction(action string) (controller, method string) {
	idx := strings.Index(action, actionSeparator)
	if idx < 0 {
		return "", ""
	}
	return action[:idx], action[idx+len(actionSeparator):]
}

// ActionLabel is the inverse of ParseAction.
func ActionLabel(controller, method string) string {
	return controller + actionSeparator + method
}

// ControllerName reports the controller a route belongs to, preferring the
// explicit field over the one embedded in the action label.
func (r RegisteredRoute) ControllerName() string {
	if r.Controller != "" {
		return r.Controller
	}
	controller, _ := ParseAction(r.Action)
	return controller
}

// MethodIndex groups routed method names by controller.
func (s *Snapshot) MethodIndex() MethodIndex {
	idx := make(MethodIndex)
	for _, route := range s.Routes {
		controller := route.ControllerName()
		_, method := ParseAction(route.Action)
		if controller == "" || method == "" {
			continue
		}
		if idx[controller] == nil {
			idx[controller] = make(map[string]bool)
		}
		idx[controller][method] = true
	}
	return idx
}

// Names maps every non-empty route name to the route that owns it. When a
// name is registered twice the first route wins.
func (s *Snapshot) Names() map[string]RegisteredRoute {
	names := make(map[string]RegisteredRoute)
	for _, route := range s.Routes {
		if route.Name == "" {
			continue
		}
		if _, exists := names[route.Name]; !exists {
			names[route.Name] = route
		}
	}
	return names
}

// Append returns a new snapshot holding the existing routes followed by
// routes. The receiver is left untouched.
func (s *Snapshot) Append(routes ...RegisteredRoute) *Snapshot {
	merged := &Snapshot{Routes: make([]RegisteredRoute, 0, len(s.Routes)+len(routes))}
	merged.Routes = append(merged.Routes, s.Routes...)
	merged.Routes = append(merged.Routes, routes...)
	return merged
}
