package synth

import (
	"regexp"
	"strings"

	"github.com/Aman-s12345/go-routegen/internal/introspect"
)

const (
	defaultVerb      = "get"
	controllerSuffix = "Controller"
)

var verbPattern = regexp.MustCompile(`^(get|post|put|delete)[A-Z]`)

// Parse splits a method name into its HTTP verb and the rest of the name.
// "postSave" → ("post", "Save"); "save" → ("get", "save").
func Parse(methodName string) (verb, remainder string) {
	m := verbPattern.FindStringSubmatch(methodName)
	if m == nil {
		return defaultVerb, methodName
	}
	return strings.ToLower(m[1]), methodName[len(m[1]):]
}

// BuildSuffix renders the route parameters of a method, skipping injected
// class-typed parameters: "/{id}/{filter?}".
func BuildSuffix(params []introspect.MethodParameter) string {
	var b strings.Builder
	for _, param := range params {
		if param.IsClassType {
			continue
		}
		b.WriteString("/{")
		b.WriteString(param.Name)
		if param.Optional {
			b.WriteString("?")
		}
		b.WriteString("}")
	}
	return b.String()
}

// ControllerSlug lower-cases a controller's short name and drops its
// "Controller" suffix.
func ControllerSlug(shortName string) string {
	return strings.ToLower(strings.TrimSuffix(shortName, controllerSuffix))
}
