package render

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"github.com/Aman-s12345/go-routegen/internal/introspect"
	"github.com/Aman-s12345/go-routegen/internal/synth"
)

// goRenderer emits one constructor per group returning a routes.Group whose
// handlers are the controller's methods.
type goRenderer struct {
	pkg string
}

func (r goRenderer) Render(groups []synth.ControllerGroup) ([]byte, error) {
	var buf bytes.Buffer
	for _, group := range groups {
		short := shortName(group)
		fmt.Fprintf(&buf, "\n// %s registers the routes of %s.\n", funcName(group.PathPrefix), group.Controller)
		if group.Description != "" {
			buf.WriteString("//\n" + comment(group.Description))
		}
		fmt.Fprintf(&buf, "func %s(h *%s) %s.Group {\n", funcName(group.PathPrefix), short, r.pkg)
		fmt.Fprintf(&buf, "return %s.Group{\n", r.pkg)
		fmt.Fprintf(&buf, "Prefix: %q,\n", "/"+strings.Trim(group.PathPrefix, "/"))
		fmt.Fprintf(&buf, "Routes: []%s.Route{\n", r.pkg)
		for _, route := range group.Routes {
			fmt.Fprintf(&buf, "// %s\n", route.RouteName)
			fmt.Fprintf(&buf, "{Method: %q, Pattern: %q, Handler: h.%s},\n",
				strings.ToUpper(route.HTTPVerb), route.URLPath, introspect.GoName(route.Method))
		}
		buf.WriteString("},\n}\n}\n")
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format Go output: %w", err)
	}
	return out, nil
}

// funcName builds an exported identifier from a path prefix:
// "admin/user" → "AdminUserRoutes".
func funcName(prefix string) string {
	var b strings.Builder
	for _, segment := range strings.FieldsFunc(prefix, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		runes := []rune(segment)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	name := b.String()
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		name = "Group" + name
	}
	return name + "Routes"
}

func shortName(group synth.ControllerGroup) string {
	if len(group.Routes) > 0 {
		if controller, _, ok := strings.Cut(group.Routes[0].ActionLabel, "@"); ok && controller != "" {
			return controller
		}
	}
	return "Controller"
}
