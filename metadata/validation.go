package metadata

import (
	"fmt"
	"regexp"
	"strings"
)

var versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// Validate verifies whether manifest metadata is plausible for an archive that
// is to be placed on a classpath.  A positive result (no error returned) does not
// imply that the archives referenced by Class-Path actually exist.
//
// Plausible means:
//
// Manifest-Version is present, and is a dotted sequence of numbers.
//
// Main-Class, if present, is a class name rather than a resource path.
//
// Class-Path entries are relative URLs or file: URLs.
func (m *Manifest) Validate() error {
	if m.Version == "" {
		return fmt.Errorf("manifest has no %s", ManifestVersion)
	}

	if !versionPattern.MatchString(m.Version) {
		return fmt.Errorf("malformed %s %q", ManifestVersion, m.Version)
	}

	if strings.ContainsAny(m.MainClass, "/\\") || strings.HasSuffix(m.MainClass, ".class") {
		return fmt.Errorf("%s %q is a path, not a class name", MainClass, m.MainClass)
	}

	for _, entry := range m.ClassPath {
		if i := strings.Index(entry, ":"); i > 1 && !strings.HasPrefix(entry, "file:") {
			return fmt.Errorf("%s entry %q is not a local URL", ClassPath, entry)
		}
	}

	return nil
}
