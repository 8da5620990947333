// Package resolv locates the search path entry (archive or class directory) that
// provides a given class.
//
// A lookup enumerates every URL a ResourceFinder reports for the class's
// resource, normalizes each into the path of the archive or base directory it came
// from, and picks the first that matches a Filter.  Finding nothing is not an error;
// whether an absent class matters is up to the caller.  A URL whose scheme cannot be
// normalized, however, is always an error (UnsupportedURLError), since skipping it
// could hide an entry that does provide the class.
package resolv
