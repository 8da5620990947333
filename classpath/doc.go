// Package classpath assembles the classpath needed to run an embedded Kotlin
// toolchain, by locating the archives that provide a catalog of well known classes
// (compiler, standard library, REPL engine) plus any classes the caller needs.
//
// Components that are requested are required: if one cannot be found, resolution
// fails with a MissingComponentError naming it.  The condition reflects a
// misconfigured environment, so callers should abort rather than retry.
package classpath
