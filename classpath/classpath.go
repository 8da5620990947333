package classpath

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sparklin/kshell"
	"github.com/sparklin/kshell/resolv"
)

// MissingComponentError is returned when a required component cannot be
// found on the search path
type MissingComponentError struct {
	Component Component
	Class     string
}

func (e *MissingComponentError) Error() string {
	if e.Component == AdditionalClass {
		return fmt.Sprintf("missing archive for additional class %s", e.Class)
	}
	return fmt.Sprintf("cannot find %s classpath for %s, which is required", e.Component, e.Class)
}

// Resolver resolves classpath components against a search path
type Resolver struct {
	locator *resolv.Locator
	catalog Catalog
}

// NewResolver creates a resolver over the given search path, identifying
// components by the classes in the given catalog
func NewResolver(finder kshell.ResourceFinder, catalog Catalog) *Resolver {
	return &Resolver{
		locator: resolv.NewLocator(finder),
		catalog: catalog.withDefaults(),
	}
}

// ResolveRequiredJars locates the archive or class directory providing each component
// selected by the given options.  Each path appears once in the result, even if
// it provides several components.  With no components selected, the result is empty.
func (r *Resolver) ResolveRequiredJars(opts Options) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)

	for _, req := range r.catalog.Requirements(opts) {
		found, err := r.resolve(req)
		if err != nil {
			return nil, err
		}

		for _, p := range found {
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		}
	}

	return paths, nil
}

func (r *Resolver) resolve(req Requirement) ([]string, error) {
	path, found, err := r.locator.Locate(req.Class, req.Filter)
	if err != nil {
		return nil, errors.Wrapf(err, "could not resolve %s", req.Component)
	}

	if !found {
		if req.Required {
			return nil, &MissingComponentError{Component: req.Component, Class: req.Class}
		}
		return nil, nil
	}

	return []string{path}, nil
}

// FindClassJars returns the archive or class directory providing the given class,
// or an empty slice if the class is absent.
func (r *Resolver) FindClassJars(class string) ([]string, error) {
	return r.resolve(Requirement{Component: AdditionalClass, Class: class, Filter: resolv.MatchAll})
}

// FindCompilerJars returns the compiler archive, or an empty slice if it is absent.
func (r *Resolver) FindCompilerJars(embeddable bool) ([]string, error) {
	return r.resolve(Requirement{Component: Compiler, Class: r.catalog.Compiler, Filter: compilerFilter(embeddable)})
}

// FindStdLibJars returns the standard library archive, or an empty slice if it is absent.
func (r *Resolver) FindStdLibJars() ([]string, error) {
	return r.resolve(Requirement{Component: StdLib, Class: r.catalog.StdLib, Filter: StdLibFilter})
}

// RequireCompilerJars is FindCompilerJars, but fails if the compiler is absent
func (r *Resolver) RequireCompilerJars(embeddable bool) ([]string, error) {
	return r.resolve(Requirement{Component: Compiler, Class: r.catalog.Compiler, Filter: compilerFilter(embeddable), Required: true})
}

// RequireStdLibJars is FindStdLibJars, but fails if the standard library is absent
func (r *Resolver) RequireStdLibJars() ([]string, error) {
	return r.resolve(Requirement{Component: StdLib, Class: r.catalog.StdLib, Filter: StdLibFilter, Required: true})
}

// ResolveRequiredJars resolves the components selected by the given options using
// the default catalog.
func ResolveRequiredJars(finder kshell.ResourceFinder, opts Options) ([]string, error) {
	return NewResolver(finder, DefaultCatalog()).ResolveRequiredJars(opts)
}

// Join joins resolved paths into a classpath string, using the OS path
// list separator.
func Join(paths []string) string {
	return strings.Join(paths, string(os.PathListSeparator))
}
