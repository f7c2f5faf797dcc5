package introspect

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ActionName converts a Go method name to its action name.
// e.g., "GetProfile" → "getProfile", "ID" → "iD"
func ActionName(goName string) string {
	if goName == "" {
		return goName
	}
	r, size := utf8.DecodeRuneInString(goName)
	return string(unicode.ToLower(r)) + goName[size:]
}

// GoName is the inverse of ActionName.
func GoName(action string) string {
	if action == "" {
		return action
	}
	r, size := utf8.DecodeRuneInString(action)
	return string(unicode.ToUpper(r)) + action[size:]
}

// SplitQualified splits "example.com/app/controllers.UserController" into
// its import path and type name.
func SplitQualified(fqn string) (importPath, typeName string, err error) {
	idx := strings.LastIndex(fqn, ".")
	if idx <= 0 || idx == len(fqn)-1 || strings.LastIndex(fqn, "/") > idx {
		return "", "", fmt.Errorf("%w: %q is not of the form importpath.Type", ErrUnresolvableController, fqn)
	}
	return fqn[:idx], fqn[idx+1:], nil
}

// Qualify joins an import path and a type name.
func Qualify(importPath, typeName string) string {
	return importPath + "." + typeName
}
