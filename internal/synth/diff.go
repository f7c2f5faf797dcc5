package synth

import (
	"github.com/Aman-s12345/go-routegen/internal/introspect"
	"github.com/Aman-s12345/go-routegen/internal/registry"
)

// Diff returns the methods of desc that have no registered route, in the
// order the controller declares them.
func Diff(desc introspect.ControllerDescriptor, index registry.MethodIndex) []string {
	routed := index.Methods(desc.FullyQualifiedName)
	missing := []string{}
	for _, method := range desc.Methods {
		if routed[method] {
			continue
		}
		missing = append(missing, method)
	}
	return missing
}
