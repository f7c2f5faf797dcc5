package synth

import (
	"fmt"
	"strings"
)

// separators delimit namespace segments in both Go import paths
// ("app/http/controllers/admin.UserController") and backslash namespaces
// ("App\Http\Controllers\Admin\UserController").
const separators = `\/.`

// Resolver computes route prefixes relative to a fixed controller root.
type Resolver struct {
	root string
}

func NewResolver(rootNamespace string) (*Resolver, error) {
	if strings.ContainsAny(rootNamespace, " \t\r\n") {
		return nil, fmt.Errorf("%w: root namespace %q contains whitespace", ErrConfiguration, rootNamespace)
	}
	root := strings.TrimRight(rootNamespace, separators)
	if root == "" {
		return nil, fmt.Errorf("%w: root namespace is empty", ErrConfiguration)
	}
	return &Resolver{root: root}, nil
}

// Resolve derives the namespace fragment, path prefix and route-name prefix
// for a controller. A controller outside the root keeps its whole namespace
// as the fragment.
func (r *Resolver) Resolve(fqn, shortName string) (Prefix, error) {
	if shortName == "" {
		return Prefix{}, fmt.Errorf("%w: empty short name for %q", ErrConfiguration, fqn)
	}

	relative := fqn
	if rest, ok := strings.CutPrefix(fqn, r.root); ok && (rest == "" || isSeparator(rune(rest[0]))) {
		relative = rest
	}
	relative = strings.TrimSuffix(relative, shortName)
	relative = strings.Trim(relative, separators)

	slug := ControllerSlug(shortName)
	if relative == "" {
		return Prefix{Path: slug}, nil
	}

	segments := strings.FieldsFunc(strings.ToLower(relative), isSeparator)
	return Prefix{
		Namespace: relative,
		Path:      strings.Join(segments, "/") + "/" + slug,
		Name:      strings.Join(segments, ".") + ".",
	}, nil
}

func isSeparator(r rune) bool {
	return strings.ContainsRune(separators, r)
}
