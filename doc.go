// Package kshell locates the archives and class directories that make up the
// runtime classpath of an embedded Kotlin toolchain (compiler, standard library,
// REPL engine).
//
// Resources are discovered through a ResourceFinder, which plays the part of a JVM
// classloader: given a resource name, it enumerates the URLs of every location on
// its search path that provides it.  See drivers/fs for the filesystem implementation,
// resolv for locating a single class, and classpath for assembling a full classpath.
package kshell
