package introspect

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const controllerSuffix = "Controller"

// Discover lists the fully-qualified names of exported types ending in
// "Controller" declared in files under projectPath matching pattern,
// e.g. "internal/controllers/**/*.go". Order is by file path, then by
// declaration.
func Discover(projectPath, pattern string) ([]string, error) {
	modulePath, err := ModulePath(projectPath)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(projectPath), pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid controllers pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	fileSet := token.NewFileSet()
	seen := make(map[string]bool)
	controllers := []string{}
	for _, match := range matches {
		if !strings.HasSuffix(match, ".go") || strings.HasSuffix(match, "_test.go") {
			continue
		}

		src, err := parser.ParseFile(fileSet, filepath.Join(projectPath, filepath.FromSlash(match)), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", match, err)
		}

		importPath := modulePath
		if dir := path.Dir(match); dir != "." {
			importPath = modulePath + "/" + dir
		}

		for _, name := range controllerTypes(src) {
			fqn := Qualify(importPath, name)
			if seen[fqn] {
				continue
			}
			seen[fqn] = true
			controllers = append(controllers, fqn)
		}
	}
	return controllers, nil
}

func controllerTypes(src *ast.File) []string {
	names := []string{}
	for _, decl := range src.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || !ts.Name.IsExported() {
				continue
			}
			if strings.HasSuffix(ts.Name.Name, controllerSuffix) && ts.Name.Name != controllerSuffix {
				names = append(names, ts.Name.Name)
			}
		}
	}
	return names
}
