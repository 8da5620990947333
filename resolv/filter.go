package resolv

import (
	"path/filepath"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
)

// Filter is a regular expression over normalized candidate paths.  A path
// satisfies the filter only if the expression matches the whole path.
//
// Expressions use .NET/Perl syntax, so lookarounds are available, e.g.
// .*/kotlin-compiler-(?!embeddable).*\.jar.  Paths are matched in slash
// separated form on every OS.
type Filter struct {
	expr string
	re   *regexp2.Regexp
}

// MatchAll is satisfied by every path
var MatchAll = MustCompileFilter(".*")

// CompileFilter parses a filter expression
func CompileFilter(expr string) (*Filter, error) {
	re, err := regexp2.Compile(`\A(?:`+expr+`)\z`, regexp2.None)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid filter %s", expr)
	}

	return &Filter{expr: expr, re: re}, nil
}

// MustCompileFilter is like CompileFilter, but panics on a malformed expression.
func MustCompileFilter(expr string) *Filter {
	f, err := CompileFilter(expr)
	if err != nil {
		panic(err)
	}
	return f
}

// Match reports whether the given path satisfies the filter
func (f *Filter) Match(path string) (bool, error) {
	matched, err := f.re.MatchString(filepath.ToSlash(path))
	if err != nil {
		return false, errors.Wrapf(err, "could not match %s against %s", path, f.expr)
	}
	return matched, nil
}

func (f *Filter) String() string {
	return f.expr
}
