package render

import (
	"bytes"
	"fmt"

	"github.com/Aman-s12345/go-routegen/internal/synth"
)

// laravelRenderer emits Route::group blocks for a Laravel routes file, each
// preceded by the controller's description.
type laravelRenderer struct{}

func (laravelRenderer) Render(groups []synth.ControllerGroup) ([]byte, error) {
	var buf bytes.Buffer
	for _, group := range groups {
		namespace := ""
		if group.NamespaceFragment != "" {
			namespace = fmt.Sprintf(",'namespace'=>'%s'", group.NamespaceFragment)
		}
		buf.WriteString("\n")
		if group.Description != "" {
			buf.WriteString(comment(group.Description))
		}
		fmt.Fprintf(&buf, "Route::group(['prefix'=>'%s'%s],function(){\n", group.PathPrefix, namespace)
		for _, route := range group.Routes {
			fmt.Fprintf(&buf, "    Route::%s('%s',[\n", route.HTTPVerb, route.URLPath)
			fmt.Fprintf(&buf, "        'as'=>'%s',\n", route.RouteName)
			fmt.Fprintf(&buf, "        'uses'=>'%s'\n", route.ActionLabel)
			buf.WriteString("    ]);\n")
		}
		buf.WriteString("});\n")
	}
	return buf.Bytes(), nil
}
