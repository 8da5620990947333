package resolv

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sparklin/kshell"
	"github.com/sparklin/kshell/fspath"
	resurl "github.com/sparklin/kshell/internal/resolv"
)

// UnsupportedURLError is returned when a resource URL for a class cannot
// be normalized into a local path.  It indicates an unanticipated runtime environment,
// not an absent class.
type UnsupportedURLError struct {
	Class string
	URL   string
	Err   error // underlying cause, if the scheme was recognized but the URL was malformed
}

func (e *UnsupportedURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unsupported resource URL scheme for class %s: %s", e.Class, e.Err)
	}
	return fmt.Sprintf("unsupported resource URL scheme for class %s: %s", e.Class, e.URL)
}

// Locator establishes a context for locating classes, i.e. the
// search path whose resources are consulted
type Locator struct {
	finder kshell.ResourceFinder
}

// NewLocator establishes a new locator over the given resource finder
func NewLocator(finder kshell.ResourceFinder) *Locator {
	return &Locator{finder: finder}
}

// Locate returns the path of the first archive or class directory that provides the given
// class and satisfies the filter.  A nil filter matches everything.  If no candidate
// satisfies the filter, found is false and err is nil.
func (l *Locator) Locate(class string, filter *Filter) (path string, found bool, err error) {
	if filter == nil {
		filter = MatchAll
	}

	candidates, err := l.Candidates(class)
	if err != nil {
		return "", false, err
	}

	for _, c := range candidates {
		ok, err := filter.Match(c)
		if err != nil {
			return "", false, err
		}
		if ok {
			return c, true, nil
		}
	}

	return "", false, nil
}

// Candidates returns the normalized paths of every archive or class directory that
// provides the given class, in the order the resource finder reports them.  Each
// path appears once.
func (l *Locator) Candidates(class string) ([]string, error) {
	if class == "" {
		return nil, fmt.Errorf("no class name given")
	}

	resource := fspath.ClassFile.Generate(class)
	urls, err := l.finder.Resources(resource)
	if err != nil {
		return nil, errors.Wrapf(err, "could not enumerate resources for class %s", class)
	}

	var candidates []string
	seen := make(map[string]bool)
	for _, raw := range urls {
		u := resurl.Parse(raw)
		if u.Scheme == resurl.Unsupported {
			return nil, &UnsupportedURLError{Class: class, URL: raw}
		}

		path, err := u.BaseFile(resource)
		if err != nil {
			return nil, &UnsupportedURLError{Class: class, URL: raw, Err: err}
		}

		if !seen[path] {
			seen[path] = true
			candidates = append(candidates, path)
		}
	}

	return candidates, nil
}

// Locate is a convenience for a one-off lookup, equivalent to NewLocator(finder).Locate(class, filter)
func Locate(finder kshell.ResourceFinder, class string, filter *Filter) (string, bool, error) {
	return NewLocator(finder).Locate(class, filter)
}
