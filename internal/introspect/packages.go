package introspect

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/tools/go/packages"
)

const defaultPackageCacheSize = 64

// PackageIntrospector loads controllers through the type checker. It sees
// named scalar types for what they are, at the cost of a full package load.
type PackageIntrospector struct {
	dir   string
	mu    sync.Mutex
	cache *lru.Cache[string, *packages.Package]
}

// NewPackages creates an introspector that loads packages relative to dir.
// cacheSize bounds the number of loaded packages kept in memory.
func NewPackages(dir string, cacheSize int) (*PackageIntrospector, error) {
	if cacheSize <= 0 {
		cacheSize = defaultPackageCacheSize
	}
	cache, err := lru.New[string, *packages.Package](cacheSize)
	if err != nil {
		return nil, err
	}
	return &PackageIntrospector{dir: dir, cache: cache}, nil
}

func (p *PackageIntrospector) Describe(ctx context.Context, fqn string) (TypeInfo, error) {
	pkg, named, err := p.lookup(ctx, fqn)
	if err != nil {
		return TypeInfo{}, err
	}
	return TypeInfo{
		FullyQualifiedName: fqn,
		ShortName:          named.Obj().Name(),
		Description:        typeDoc(pkg, named.Obj().Name()),
	}, nil
}

func (p *PackageIntrospector) DeclaredPublicMethods(ctx context.Context, fqn string) ([]MethodDescriptor, error) {
	_, named, err := p.lookup(ctx, fqn)
	if err != nil {
		return nil, err
	}

	funcs := declaredMethods(named)
	methods := make([]MethodDescriptor, 0, len(funcs))
	for _, fn := range funcs {
		methods = append(methods, MethodDescriptor{Name: ActionName(fn.Name()), GoName: fn.Name()})
	}
	return methods, nil
}

func (p *PackageIntrospector) Parameters(ctx context.Context, fqn, method string) ([]MethodParameter, error) {
	_, named, err := p.lookup(ctx, fqn)
	if err != nil {
		return nil, err
	}

	for _, fn := range declaredMethods(named) {
		if ActionName(fn.Name()) != method {
			continue
		}
		sig, ok := fn.Type().(*types.Signature)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s has no signature", ErrReflection, fqn, fn.Name())
		}
		return signatureParameters(sig), nil
	}
	return nil, fmt.Errorf("%w: %s has no method %s", ErrReflection, fqn, method)
}

func (p *PackageIntrospector) lookup(ctx context.Context, fqn string) (*packages.Package, *types.Named, error) {
	importPath, typeName, err := SplitQualified(fqn)
	if err != nil {
		return nil, nil, err
	}
	pkg, err := p.load(ctx, importPath)
	if err != nil {
		return nil, nil, err
	}

	obj := pkg.Types.Scope().Lookup(typeName)
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, nil, fmt.Errorf("%w: type %s not declared", ErrUnresolvableController, fqn)
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s is not a named type", ErrUnresolvableController, fqn)
	}
	return pkg, named, nil
}

func (p *PackageIntrospector) load(ctx context.Context, importPath string) (*packages.Package, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pkg, ok := p.cache.Get(importPath); ok {
		return pkg, nil
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     p.dir,
		Mode:    packages.NeedName | packages.NeedTypes | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, importPath)
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %v", ErrUnresolvableController, importPath, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: no packages found for %s", ErrUnresolvableController, importPath)
	}
	if len(pkgs[0].Errors) > 0 {
		return nil, fmt.Errorf("%w: package errors: %v", ErrUnresolvableController, pkgs[0].Errors)
	}
	if pkgs[0].Types == nil {
		return nil, fmt.Errorf("%w: type information not available for %s", ErrUnresolvableController, importPath)
	}

	p.cache.Add(importPath, pkgs[0])
	return pkgs[0], nil
}

// declaredMethods returns exported methods declared on named itself, in
// declaration order. Promoted methods have a selection index longer than one.
func declaredMethods(named *types.Named) []*types.Func {
	mset := types.NewMethodSet(types.NewPointer(named))
	funcs := []*types.Func{}
	for i := 0; i < mset.Len(); i++ {
		sel := mset.At(i)
		fn, ok := sel.Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}
		if len(sel.Index()) > 1 {
			continue
		}
		funcs = append(funcs, fn)
	}
	sort.SliceStable(funcs, func(i, j int) bool {
		return funcs[i].Pos() < funcs[j].Pos()
	})
	return funcs
}

func signatureParameters(sig *types.Signature) []MethodParameter {
	params := sig.Params()
	out := make([]MethodParameter, 0, params.Len())
	for i := 0; i < params.Len(); i++ {
		v := params.At(i)
		name := v.Name()
		if name == "" || name == "_" {
			name = fmt.Sprintf("arg%d", i)
		}

		t := v.Type()
		variadic := sig.Variadic() && i == params.Len()-1
		if variadic {
			if slice, ok := t.(*types.Slice); ok {
				t = slice.Elem()
			}
		}
		optional, class := classifyType(t)
		out = append(out, MethodParameter{
			Name:        name,
			Optional:    optional || variadic,
			IsClassType: class,
		})
	}
	return out
}

func classifyType(t types.Type) (optional, class bool) {
	if ptr, ok := t.Underlying().(*types.Pointer); ok {
		if isScalar(ptr.Elem()) {
			return true, false
		}
		return false, true
	}
	return false, !isScalar(t)
}

func isScalar(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}
	info := basic.Info()
	return info&(types.IsBoolean|types.IsInteger|types.IsFloat|types.IsString) != 0 && basic.Kind() != types.UnsafePointer
}

func typeDoc(pkg *packages.Package, typeName string) string {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name.Name != typeName {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}
				if doc == nil {
					return ""
				}
				return strings.TrimSpace(doc.Text())
			}
		}
	}
	return ""
}
