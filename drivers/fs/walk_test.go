package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
	"github.com/sparklin/kshell"
	"github.com/sparklin/kshell/drivers/fs"
)

func TestClasses(t *testing.T) {
	runInTempDir(t, func(dir string) {
		classes := writeClasses(t, filepath.Join(dir, "classes"),
			"a/B.class", "a/b/C.class", "Top.class", "a/resource.txt")
		archive := writeArchive(t, filepath.Join(dir, "lib.jar"), nil,
			"kotlin/Pair.class", "kotlin/Unit.class", "META-INF/kotlin-stdlib.kotlin_module")

		d, err := fs.NewDriver(fs.Config{Entries: []string{classes, archive}})
		if err != nil {
			t.Fatalf("Error setting up driver: %+v", err)
		}

		cases := []struct {
			name     string
			entry    fs.Entry
			expected []string
		}{
			{"directory", d.Entries()[0], []string{"Top", "a.B", "a.b.C"}},
			{"archive", d.Entries()[1], []string{"kotlin.Pair", "kotlin.Unit"}},
		}

		for _, c := range cases {
			c := c
			t.Run(c.name, func(t *testing.T) {
				found, err := d.Classes(c.entry)
				if err != nil {
					t.Fatalf("Could not list classes of %s: %+v", c.entry.Path, err)
				}

				diffs := deep.Equal(c.expected, found)
				if len(diffs) != 0 {
					t.Errorf("Did not get expected classes: %s", diffs)
				}
			})
		}
	})
}

func TestClassesBadEntries(t *testing.T) {
	runInTempDir(t, func(dir string) {
		cases := map[string]fs.Entry{
			"unknownKind":      {Path: dir, Kind: kshell.Unknown},
			"missingDirectory": {Path: filepath.Join(dir, "DOES_NOT_EXIST"), Kind: kshell.Directory},
			"missingArchive":   {Path: filepath.Join(dir, "DOES_NOT_EXIST.jar"), Kind: kshell.Archive},
		}

		d := &fs.Driver{}
		for name, c := range cases {
			c := c
			t.Run(name, func(t *testing.T) {
				if _, err := d.Classes(c); err == nil {
					t.Error("Did not return an error!")
				}
			})
		}
	})
}

func TestWildcardIgnoresSubdirectories(t *testing.T) {
	runInTempDir(t, func(dir string) {
		top := writeArchive(t, filepath.Join(dir, "top.JAR"), nil)
		writeArchive(t, filepath.Join(dir, "sub", "nested.jar"), nil)
		_ = os.Symlink(top, filepath.Join(dir, "zlink.jar"))

		d, err := fs.NewDriver(fs.Config{Entries: []string{filepath.Join(dir, "*")}})
		if err != nil {
			t.Fatalf("Error setting up driver: %+v", err)
		}

		for _, e := range d.Entries() {
			if filepath.Dir(e.Path) != dir {
				t.Errorf("wildcard matched a nested archive: %s", e.Path)
			}
		}
		if len(d.Entries()) == 0 || d.Entries()[0].Path != top {
			t.Errorf("expected %s first, got %+v", top, d.Entries())
		}
	})
}
