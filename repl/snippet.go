// Package repl provides bookkeeping for a Kotlin REPL session: naming compiled
// units of input, tracking which earlier declarations have been redefined, and
// detecting the version of the runtime the session targets.
package repl

import (
	"strings"
)

// Snippet is a compiled unit of REPL input
type Snippet interface {
	Source() string
}

// NamedSnippet is a snippet that introduces a name into the session
type NamedSnippet interface {
	Snippet
	Name() string
}

// DeclarationSnippet is a snippet whose declaration can be redefined by later input.
// Two declarations with equal signatures declare the same entity.
type DeclarationSnippet interface {
	Snippet
	Signature() string
	Shadowed() bool
	SetShadowed(bool)
}

// DeclarationKind names the kind of entity a Declaration declares
type DeclarationKind int

// Declaration kinds
const (
	Function DeclarationKind = iota
	Property
	Class
)

func (k DeclarationKind) String() string {
	switch k {
	case Property:
		return "val"
	case Class:
		return "class"
	default:
		return "fun"
	}
}

// Declaration is a snippet declaring a function, property or class.  It is both a
// NamedSnippet and a DeclarationSnippet.
type Declaration struct {
	Code   string
	Kind   DeclarationKind
	Ident  string
	Params []string // parameter types, for functions

	shadowed bool
}

// Source returns the input the declaration was compiled from
func (d *Declaration) Source() string { return d.Code }

// Name returns the declared identifier
func (d *Declaration) Name() string { return d.Ident }

// Signature identifies the declared entity independent of its source, e.g.
// "fun f(Int, String)" or "val x".  Functions overloaded on parameter types have
// distinct signatures.
func (d *Declaration) Signature() string {
	if d.Kind == Function {
		return d.Kind.String() + " " + d.Ident + "(" + strings.Join(d.Params, ", ") + ")"
	}
	return d.Kind.String() + " " + d.Ident
}

// Shadowed reports whether a later declaration has redefined this one
func (d *Declaration) Shadowed() bool { return d.shadowed }

// SetShadowed marks the declaration as redefined (or not)
func (d *Declaration) SetShadowed(shadowed bool) { d.shadowed = shadowed }

// Expression is a snippet that declares nothing
type Expression struct {
	Code string
}

// Source returns the input the expression was compiled from
func (e *Expression) Source() string { return e.Code }

// OfType returns the snippets that are of type T, in order
func OfType[T Snippet](snippets []Snippet) []T {
	var matching []T
	for _, s := range snippets {
		if t, ok := s.(T); ok {
			matching = append(matching, t)
		}
	}
	return matching
}

// ContainsWithName reports whether any named snippet has exactly the given name
func ContainsWithName(snippets []Snippet, name string) bool {
	for _, s := range OfType[NamedSnippet](snippets) {
		if s.Name() == name {
			return true
		}
	}
	return false
}

// Shadow marks every declaration in history that is redefined by a declaration in
// snippets (i.e. has an equal signature).  Declarations already marked stay marked,
// and snippets is not modified.
//
// Shadow mutates history in place; it must not be called concurrently on the same
// history.
func Shadow(history []Snippet, snippets []Snippet) {
	redefined := make(map[string]bool)
	for _, s := range OfType[DeclarationSnippet](snippets) {
		redefined[s.Signature()] = true
	}

	for _, h := range OfType[DeclarationSnippet](history) {
		if redefined[h.Signature()] {
			h.SetShadowed(true)
		}
	}
}
