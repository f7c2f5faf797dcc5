// Package introspect reads controller types and their action methods from Go
// source, either syntactically or through the type checker.
package introspect

import (
	"context"
	"fmt"
	"strings"
)

const magicPrefix = "__"

// Introspect builds the descriptor for one controller. Methods whose declared
// or action name is listed in ignore are skipped, as are magic methods.
func Introspect(ctx context.Context, ti TypeIntrospector, fqn string, ignore []string) (ControllerDescriptor, error) {
	info, err := ti.Describe(ctx, fqn)
	if err != nil {
		return ControllerDescriptor{}, unresolvable(fqn, err)
	}

	methods, err := ti.DeclaredPublicMethods(ctx, fqn)
	if err != nil {
		return ControllerDescriptor{}, unresolvable(fqn, err)
	}

	skip := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		skip[name] = true
	}

	desc := ControllerDescriptor{
		FullyQualifiedName: info.FullyQualifiedName,
		ShortName:          info.ShortName,
		Description:        info.Description,
		Methods:            []string{},
	}
	for _, m := range methods {
		if strings.HasPrefix(m.Name, magicPrefix) || strings.HasPrefix(m.GoName, magicPrefix) {
			continue
		}
		if skip[m.Name] || skip[m.GoName] {
			continue
		}
		desc.Methods = append(desc.Methods, m.Name)
	}

	return desc, nil
}

func unresolvable(fqn string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUnresolvableController, fqn, err)
}
