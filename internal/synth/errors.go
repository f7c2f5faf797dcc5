package synth

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration      = errors.New("invalid configuration")
	ErrRouteNameCollision = errors.New("route name collision")
)

type DiagnosticKind string

const (
	KindUnresolvableController DiagnosticKind = "unresolvable_controller"
	KindReflectionError        DiagnosticKind = "reflection_error"
	KindRouteNameCollision     DiagnosticKind = "route_name_collision"
)

// Diagnostic reports a controller, method or route that was left out of the
// output. Entries lists the offending action labels of a collision.
type Diagnostic struct {
	Kind       DiagnosticKind
	Controller string
	Method     string
	RouteName  string
	Entries    []string
	Err        error
}

func (d Diagnostic) Error() string {
	var b strings.Builder
	b.WriteString(string(d.Kind))
	if d.Controller != "" {
		fmt.Fprintf(&b, " controller=%s", d.Controller)
	}
	if d.Method != "" {
		fmt.Fprintf(&b, " method=%s", d.Method)
	}
	if d.RouteName != "" {
		fmt.Fprintf(&b, " route=%s", d.RouteName)
	}
	if len(d.Entries) > 0 {
		fmt.Fprintf(&b, " entries=[%s]", strings.Join(d.Entries, ", "))
	}
	if d.Err != nil {
		fmt.Fprintf(&b, ": %v", d.Err)
	}
	return b.String()
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}
