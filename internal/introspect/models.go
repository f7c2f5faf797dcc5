package introspect

import "context"

// TypeIntrospector reads controller metadata. Implementations report only
// exported methods declared directly on the controller type.
type TypeIntrospector interface {
	Describe(ctx context.Context, fqn string) (TypeInfo, error)
	DeclaredPublicMethods(ctx context.Context, fqn string) ([]MethodDescriptor, error)
	Parameters(ctx context.Context, fqn, method string) ([]MethodParameter, error)
}

type TypeInfo struct {
	FullyQualifiedName string
	ShortName          string
	Description        string
}

type MethodDescriptor struct {
	Name   string // action name, e.g. "getProfile"
	GoName string // declared name, e.g. "GetProfile"
}

// MethodParameter describes one declared parameter. Class-typed parameters
// are injected services and never appear in a route path.
type MethodParameter struct {
	Name        string
	Optional    bool
	IsClassType bool
}

type ControllerDescriptor struct {
	FullyQualifiedName string
	ShortName          string
	Description        string
	Methods            []string
}
