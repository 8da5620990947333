// Package metadata contains facilities for working with archive metadata.
// At the moment, it is mostly a 1:1 reflection of the main section of a JAR
// manifest (META-INF/MANIFEST.MF).
//
// The attribute of most interest is Class-Path, which names further archives or
// class directories, relative to the archive that declares them, that a JVM
// classloader appends to its search path.  Per-entry sections of a manifest are
// not retained.
package metadata
