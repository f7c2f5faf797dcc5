package synth

// CandidateRoute is the route proposed for one missing controller method.
// URLPath is relative to the enclosing group's prefix.
type CandidateRoute struct {
	HTTPVerb    string `json:"method" yaml:"method"`
	URLPath     string `json:"path" yaml:"path"`
	RouteName   string `json:"name" yaml:"name"`
	ActionLabel string `json:"action" yaml:"action"`

	Controller string `json:"-" yaml:"-"`
	Method     string `json:"-" yaml:"-"`
}

// ControllerGroup collects the proposed routes of one controller under its
// path prefix and optional namespace. Description is the controller's doc
// comment, if any.
type ControllerGroup struct {
	Controller        string           `json:"controller" yaml:"controller"`
	Description       string           `json:"description,omitempty" yaml:"description,omitempty"`
	NamespaceFragment string           `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	PathPrefix        string           `json:"prefix" yaml:"prefix"`
	Routes            []CandidateRoute `json:"routes" yaml:"routes"`
}

// Prefix is what a controller's position under the root namespace
// contributes to its routes.
type Prefix struct {
	Namespace string // e.g. "Admin", empty for controllers at the root
	Path      string // e.g. "admin/user"
	Name      string // e.g. "admin."
}

// MethodInput carries the already-resolved pieces RenderMethod assembles.
type MethodInput struct {
	Verb               string
	Remainder          string
	ParameterSuffix    string
	RouteNamePrefix    string
	ShortName          string
	MethodName         string
	FullyQualifiedName string
}

type Result struct {
	Groups      []ControllerGroup
	Diagnostics []Diagnostic
}
