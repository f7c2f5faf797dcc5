package introspect

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModulePath returns the module path declared in projectPath/go.mod.
func ModulePath(projectPath string) (string, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoModule, err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("%w: no module directive in %s", ErrNoModule, projectPath)
	}
	return path, nil
}
