package introspect

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var scalarTypes = map[string]bool{
	"string":  true,
	"bool":    true,
	"int":     true,
	"int8":    true,
	"int16":   true,
	"int32":   true,
	"int64":   true,
	"uint":    true,
	"uint8":   true,
	"uint16":  true,
	"uint32":  true,
	"uint64":  true,
	"float32": true,
	"float64": true,
	"byte":    true,
	"rune":    true,
}

// SourceIntrospector reads controllers straight from the syntax tree of the
// project's packages. Methods promoted from embedded types are never seen,
// which is what declared-only means here.
type SourceIntrospector struct {
	root       string
	modulePath string
	fileSet    *token.FileSet

	mu       sync.Mutex
	packages map[string]*sourcePackage
}

type sourcePackage struct {
	types   map[string]*sourceType
	methods map[string][]*ast.FuncDecl
}

type sourceType struct {
	spec *ast.TypeSpec
	doc  *ast.CommentGroup
}

func NewSource(projectPath string) (*SourceIntrospector, error) {
	modulePath, err := ModulePath(projectPath)
	if err != nil {
		return nil, err
	}
	return &SourceIntrospector{
		root:       projectPath,
		modulePath: modulePath,
		fileSet:    token.NewFileSet(),
		packages:   make(map[string]*sourcePackage),
	}, nil
}

func (s *SourceIntrospector) Describe(ctx context.Context, fqn string) (TypeInfo, error) {
	pkg, typeName, err := s.lookup(fqn)
	if err != nil {
		return TypeInfo{}, err
	}
	st, ok := pkg.types[typeName]
	if !ok {
		return TypeInfo{}, fmt.Errorf("%w: type %s not declared", ErrUnresolvableController, fqn)
	}

	info := TypeInfo{FullyQualifiedName: fqn, ShortName: typeName}
	if st.doc != nil {
		info.Description = strings.TrimSpace(st.doc.Text())
	}
	return info, nil
}

func (s *SourceIntrospector) DeclaredPublicMethods(ctx context.Context, fqn string) ([]MethodDescriptor, error) {
	pkg, typeName, err := s.lookup(fqn)
	if err != nil {
		return nil, err
	}
	if _, ok := pkg.types[typeName]; !ok {
		return nil, fmt.Errorf("%w: type %s not declared", ErrUnresolvableController, fqn)
	}

	methods := []MethodDescriptor{}
	for _, decl := range pkg.methods[typeName] {
		if !decl.Name.IsExported() {
			continue
		}
		methods = append(methods, MethodDescriptor{
			Name:   ActionName(decl.Name.Name),
			GoName: decl.Name.Name,
		})
	}
	return methods, nil
}

func (s *SourceIntrospector) Parameters(ctx context.Context, fqn, method string) ([]MethodParameter, error) {
	pkg, typeName, err := s.lookup(fqn)
	if err != nil {
		return nil, err
	}

	for _, decl := range pkg.methods[typeName] {
		if !decl.Name.IsExported() || ActionName(decl.Name.Name) != method {
			continue
		}
		return fieldParameters(decl.Type.Params), nil
	}
	return nil, fmt.Errorf("%w: %s has no method %s", ErrReflection, fqn, method)
}

func (s *SourceIntrospector) lookup(fqn string) (*sourcePackage, string, error) {
	importPath, typeName, err := SplitQualified(fqn)
	if err != nil {
		return nil, "", err
	}
	pkg, err := s.load(importPath)
	if err != nil {
		return nil, "", err
	}
	return pkg, typeName, nil
}

func (s *SourceIntrospector) load(importPath string) (*sourcePackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pkg, ok := s.packages[importPath]; ok {
		return pkg, nil
	}

	dir, err := s.dirFor(importPath)
	if err != nil {
		return nil, err
	}
	pkg, err := s.parseDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnresolvableController, err)
	}
	s.packages[importPath] = pkg
	return pkg, nil
}

func (s *SourceIntrospector) dirFor(importPath string) (string, error) {
	if importPath == s.modulePath {
		return s.root, nil
	}
	rest, ok := strings.CutPrefix(importPath, s.modulePath+"/")
	if !ok {
		return "", fmt.Errorf("%w: %s is outside module %s", ErrUnresolvableController, importPath, s.modulePath)
	}
	return filepath.Join(s.root, filepath.FromSlash(rest)), nil
}

func (s *SourceIntrospector) parseDir(dir string) (*sourcePackage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	pkg := &sourcePackage{
		types:   make(map[string]*sourceType),
		methods: make(map[string][]*ast.FuncDecl),
	}
	for _, name := range names {
		src, err := parser.ParseFile(s.fileSet, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, err
		}
		collectDecls(src, pkg)
	}
	return pkg, nil
}

func collectDecls(src *ast.File, pkg *sourcePackage) {
	for _, decl := range src.Decls {
		switch node := decl.(type) {
		case *ast.GenDecl:
			if node.Tok != token.TYPE {
				continue
			}
			for _, spec := range node.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := typeSpec.Doc
				if doc == nil && len(node.Specs) == 1 {
					doc = node.Doc
				}
				pkg.types[typeSpec.Name.Name] = &sourceType{spec: typeSpec, doc: doc}
			}
		case *ast.FuncDecl:
			if node.Recv == nil || len(node.Recv.List) == 0 {
				continue
			}
			if recv := receiverName(node.Recv.List[0].Type); recv != "" {
				pkg.methods[recv] = append(pkg.methods[recv], node)
			}
		}
	}
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.IndexListExpr:
		return receiverName(e.X)
	case *ast.ParenExpr:
		return receiverName(e.X)
	case *ast.Ident:
		return e.Name
	}
	return ""
}

func fieldParameters(fields *ast.FieldList) []MethodParameter {
	params := []MethodParameter{}
	if fields == nil {
		return params
	}

	for _, field := range fields.List {
		optional, class := classifyExpr(field.Type)
		if len(field.Names) == 0 {
			params = append(params, MethodParameter{
				Name:        fmt.Sprintf("arg%d", len(params)),
				Optional:    optional,
				IsClassType: class,
			})
			continue
		}
		for _, name := range field.Names {
			paramName := name.Name
			if paramName == "_" {
				paramName = fmt.Sprintf("arg%d", len(params))
			}
			params = append(params, MethodParameter{
				Name:        paramName,
				Optional:    optional,
				IsClassType: class,
			})
		}
	}
	return params
}

// classifyExpr reports whether a parameter type is optional and whether it
// is a class type. Only predeclared scalars and pointers to them are route
// bound; a local named type is treated as a class type since the syntax tree
// alone cannot tell what it wraps.
func classifyExpr(expr ast.Expr) (optional, class bool) {
	switch e := expr.(type) {
	case *ast.Ellipsis:
		_, class = classifyExpr(e.Elt)
		return true, class
	case *ast.StarExpr:
		if ident, ok := e.X.(*ast.Ident); ok && scalarTypes[ident.Name] {
			return true, false
		}
		return false, true
	case *ast.Ident:
		return false, !scalarTypes[e.Name]
	case *ast.ParenExpr:
		return classifyExpr(e.X)
	}
	return false, true
}
