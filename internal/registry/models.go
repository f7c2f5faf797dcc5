package registry

// RegisteredRoute is one route already known to the host application.
type RegisteredRoute struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Path       string `json:"path" yaml:"path"`
	Controller string `json:"controller,omitempty" yaml:"controller,omitempty"`
	Action     string `json:"action" yaml:"action"`
	HTTPMethod string `json:"method,omitempty" yaml:"method,omitempty"`
}

type Snapshot struct {
	Routes []RegisteredRoute `json:"routes" yaml:"routes"`
}

// MethodIndex maps a controller name to the set of its methods that already
// have a route.
type MethodIndex map[string]map[string]bool

// Methods returns the routed methods of controller. A missing controller
// yields an empty set.
func (idx MethodIndex) Methods(controller string) map[string]bool {
	if methods, ok := idx[controller]; ok {
		return methods
	}
	return map[string]bool{}
}
