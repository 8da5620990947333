package fs_test

import (
	"archive/zip"
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sparklin/kshell/metadata"
)

func runInTempDir(t *testing.T, f func(string)) {
	tempDir, err := ioutil.TempDir("", "kshell_test")
	if err != nil {
		t.Fatal("Could not create testing temp dir")
	}
	defer os.RemoveAll(tempDir)

	// Symlinked temp dirs (e.g. macOS /var) would not match absolute paths
	tempDir, err = filepath.EvalSymlinks(tempDir)
	if err != nil {
		t.Fatal("Could not resolve testing temp dir")
	}
	f(tempDir)
}

// Writes a jar at the given path containing the given resources, and
// an optional manifest
func writeArchive(t *testing.T, path string, manifest *metadata.Manifest, resources ...string) string {
	if err := os.MkdirAll(filepath.Dir(path), 0775); err != nil {
		t.Fatalf("could not create archive dir: %s", err)
	}

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("could not create archive %s: %s", path, err)
	}
	defer file.Close()

	w := zip.NewWriter(file)

	if manifest != nil {
		var buf bytes.Buffer
		if err := manifest.Serialize(&buf); err != nil {
			t.Fatalf("could not serialize manifest: %s", err)
		}
		mw, err := w.Create(metadata.ManifestFile)
		if err != nil {
			t.Fatalf("could not add manifest to %s: %s", path, err)
		}
		_, _ = mw.Write(buf.Bytes())
	}

	for _, r := range resources {
		rw, err := w.Create(r)
		if err != nil {
			t.Fatalf("could not add %s to %s: %s", r, path, err)
		}
		_, _ = rw.Write([]byte(r))
	}

	if err := w.Close(); err != nil {
		t.Fatalf("could not finish archive %s: %s", path, err)
	}
	return path
}

// Writes loose resources under the given class directory
func writeClasses(t *testing.T, dir string, resources ...string) string {
	for _, r := range resources {
		path := filepath.Join(dir, filepath.FromSlash(r))
		if err := os.MkdirAll(filepath.Dir(path), 0775); err != nil {
			t.Fatalf("could not create class dir: %s", err)
		}
		if err := ioutil.WriteFile(path, []byte(r), 0664); err != nil {
			t.Fatalf("could not write %s: %s", path, err)
		}
	}
	return dir
}
