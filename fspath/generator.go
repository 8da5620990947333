package fspath

import "strings"

// ClassFileExtension is the suffix of a compiled class resource
const ClassFileExtension = ".class"

// Generator generates a relative, solidus delimited resource path
// from a given identifier.  The resulting paths are the names by which
// a classloader's search path is queried, e.g. a fully qualified class name
// mapped to the path of its class file within an archive or class directory.
type Generator interface {
	Generate(string) string
}

// GeneratorFunc is a function that can be used to satisfy the Generator interface
type GeneratorFunc func(string) string

// Generate a path from a given id string
func (g GeneratorFunc) Generate(id string) string {
	return g(id)
}

// ClassFile maps a fully qualified class name to the resource name of its class file,
// e.g. kotlin.Pair -> kotlin/Pair.class
var ClassFile Generator = GeneratorFunc(func(class string) string {
	return strings.Replace(class, ".", "/", -1) + ClassFileExtension
})

// ClassName is the inverse of ClassFile.  Given a resource name of a class file, it
// returns the fully qualified class name.  Returns false if the resource is
// not a class file.
func ClassName(resource string) (string, bool) {
	if !strings.HasSuffix(resource, ClassFileExtension) {
		return "", false
	}

	name := strings.TrimLeft(strings.TrimSuffix(resource, ClassFileExtension), "/")
	if name == "" {
		return "", false
	}
	return strings.Replace(name, "/", ".", -1), true
}
