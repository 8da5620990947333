package resolv_test

import (
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
	"github.com/sparklin/kshell/internal/resolv"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected resolv.URL
	}{
		{"jar", "jar:file:/lib/kotlin-stdlib.jar!/kotlin/Pair.class", resolv.URL{
			Scheme: resolv.ArchiveEntry,
			Raw:    "jar:file:/lib/kotlin-stdlib.jar!/kotlin/Pair.class",
			Path:   "/lib/kotlin-stdlib.jar",
			Entry:  "kotlin/Pair.class",
		}},
		{"zip", "zip:/lib/extra.zip!/a/B.class", resolv.URL{
			Scheme: resolv.ArchiveEntry,
			Raw:    "zip:/lib/extra.zip!/a/B.class",
			Path:   "/lib/extra.zip",
			Entry:  "a/B.class",
		}},
		{"bangInArchivePath", "jar:file:/opt/release!/lib/kotlin-stdlib.jar!/kotlin/Pair.class", resolv.URL{
			Scheme: resolv.ArchiveEntry,
			Raw:    "jar:file:/opt/release!/lib/kotlin-stdlib.jar!/kotlin/Pair.class",
			Path:   "/opt/release!/lib/kotlin-stdlib.jar",
			Entry:  "kotlin/Pair.class",
		}},
		{"file", "file:/classes/a/B.class", resolv.URL{
			Scheme: resolv.LooseFile,
			Raw:    "file:/classes/a/B.class",
			Path:   "/classes/a/B.class",
		}},
		{"jarWithoutSeparator", "jar:file:/lib/a.jar", resolv.URL{Raw: "jar:file:/lib/a.jar"}},
		{"jrt", "jrt:/java.base/java/lang/Object.class", resolv.URL{Raw: "jrt:/java.base/java/lang/Object.class"}},
		{"http", "jar:http://example.com/a.jar!/a/B.class", resolv.URL{Raw: "jar:http://example.com/a.jar!/a/B.class"}},
		{"bareFile", "file:", resolv.URL{Raw: "file:"}},
		{"empty", "", resolv.URL{}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			diffs := deep.Equal(c.expected, resolv.Parse(c.raw))
			if len(diffs) != 0 {
				t.Errorf("Did not parse as expected: %s", diffs)
			}
		})
	}
}

func TestBaseFile(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		resource string
		expected string
	}{
		{"jar", "jar:file:/lib/kotlin-stdlib.jar!/kotlin/Pair.class", "kotlin/Pair.class", "/lib/kotlin-stdlib.jar"},
		{"zip", "zip:/lib/extra.zip!/a/B.class", "a/B.class", "/lib/extra.zip"},
		{"bangInArchivePath", "jar:file:/opt/release!/lib/kotlin-stdlib.jar!/kotlin/Pair.class",
			"kotlin/Pair.class", "/opt/release!/lib/kotlin-stdlib.jar"},
		{"escapedJar", "jar:file:/my%20lib/a.jar!/a/B.class", "a/B.class", "/my lib/a.jar"},
		{"file", "file:/classes/a/B.class", "a/B.class", "/classes"},
		{"escapedFile", "file:/my%20classes%231/a/B.class", "a/B.class", "/my classes#1"},
		{"authority", "file://localhost/classes/a/B.class", "a/B.class", "/classes"},
		{"fileAtRoot", "file:/a/B.class", "a/B.class", "/"},
		{"resourceLeadingSlash", "file:/classes/a/B.class", "/a/B.class", "/classes"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			path, err := resolv.Parse(c.raw).BaseFile(c.resource)
			if err != nil {
				t.Fatalf("could not normalize %s: %+v", c.raw, err)
			}

			if path != filepath.FromSlash(c.expected) {
				t.Errorf("Expected %s, got %s", filepath.FromSlash(c.expected), path)
			}
		})
	}
}

func TestBaseFileErrors(t *testing.T) {
	cases := map[string]struct {
		raw      string
		resource string
	}{
		"unsupported":     {"jrt:/java.base/java/lang/Object.class", "java/lang/Object.class"},
		"wrongResource":   {"file:/classes/a/B.class", "c/D.class"},
		"partialResource": {"file:/classes/xa/B.class", "a/B.class"},
		"badEscape":       {"jar:file:/lib/%zz.jar!/a/B.class", "a/B.class"},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			if _, err := resolv.Parse(c.raw).BaseFile(c.resource); err == nil {
				t.Error("Did not return an error!")
			}
		})
	}
}

func TestSchemeString(t *testing.T) {
	for s, expected := range map[resolv.Scheme]string{
		resolv.Unsupported:  "unsupported",
		resolv.ArchiveEntry: "archive-entry",
		resolv.LooseFile:    "loose-file",
		42:                  "unsupported",
	} {
		if s.String() != expected {
			t.Errorf("Expected %s, got %s", expected, s)
		}
	}
}
