package kshell

import "strings"

// Kind names a kind of search path entry
type Kind int

// Search path entry kinds
const (
	Unknown Kind = iota
	Directory
	Archive
	Wildcard
)

var kindNames = map[Kind]string{
	Unknown:   "unknown",
	Directory: "directory",
	Archive:   "archive",
	Wildcard:  "wildcard",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Unknown]
}

// ParseKind parses a kind name, as produced by Kind.String().  Unrecognized
// names parse as Unknown
func ParseKind(name string) Kind {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k
		}
	}
	return Unknown
}

// ResourceFinder enumerates the locations of a named resource, in the manner of
// a JVM classloader's getResources().
//
// Resources returns raw resource URLs (e.g. jar:file:/lib/a.jar!/a/B.class, or
// file:/classes/a/B.class), in search path order.  An absent resource
// results in an empty slice, not an error.
type ResourceFinder interface {
	Resources(name string) ([]string, error)
}

// ResourceFinderFunc is a function that can be used to satisfy the ResourceFinder interface
type ResourceFinderFunc func(name string) ([]string, error)

// Resources invokes the function
func (f ResourceFinderFunc) Resources(name string) ([]string, error) {
	return f(name)
}
