package fs

import (
	"archive/zip"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sparklin/kshell"
)

// Driver represents a filesystem search path, in the manner of a JVM
// classloader's classpath.
type Driver struct {
	entries []Entry
	cfg     Config
}

// Entry is a single, expanded search path entry: a class directory or an archive
type Entry struct {
	Path string      // absolute path
	Kind kshell.Kind // Directory or Archive
}

// Config encapsulates a filesystem search path config.
//
// Entries may name class directories, archives (jar or zip), or wildcards
// (a directory followed by /*), which expand to every jar directly inside that
// directory.  Entries that do not exist, or are neither a directory nor a readable
// archive, are skipped as a JVM would skip them.
//
// When FollowManifest is set, the Class-Path attribute of each archive's manifest
// is followed, and the archives or directories it names are added to the search
// path immediately after the archive that names them.
type Config struct {
	Entries        []string
	FollowManifest bool
	Logf           func(format string, args ...interface{}) // reports skipped entries, may be nil
}

// SplitList splits a classpath string (e.g. the value of CLASSPATH) into
// entries, using the OS path list separator.  Empty entries are dropped.
func SplitList(classpath string) []string {
	var entries []string
	for _, e := range filepath.SplitList(classpath) {
		if e != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

// NewDriver initializes a new filesystem driver by expanding the
// search path entries in the given config.
func NewDriver(cfg Config) (*Driver, error) {
	d := &Driver{cfg: cfg}
	if d.cfg.Logf == nil {
		d.cfg.Logf = func(string, ...interface{}) {}
	}

	seen := make(map[string]bool)
	for _, loc := range cfg.Entries {
		if err := d.add(loc, seen); err != nil {
			return nil, errors.Wrapf(err, "could not initialize search path")
		}
	}

	return d, nil
}

// Entries returns the expanded search path, in search order
func (d *Driver) Entries() []Entry {
	entries := make([]Entry, len(d.entries))
	copy(entries, d.entries)
	return entries
}

func (d *Driver) add(loc string, seen map[string]bool) error {
	if loc == "" {
		return nil
	}

	if isWildcard(loc) {
		archives, err := expandWildcard(strings.TrimSuffix(loc, "*"))
		if err != nil {
			return err
		}
		for _, archive := range archives {
			if err := d.add(archive, seen); err != nil {
				return err
			}
		}
		return nil
	}

	addr, err := filepath.Abs(loc)
	if err != nil {
		return errors.Wrapf(err, "could not calculate absolute path of %s", loc)
	}

	if seen[addr] {
		return nil
	}
	seen[addr] = true

	info, err := os.Stat(addr)
	if os.IsNotExist(err) {
		d.cfg.Logf("skipping missing search path entry %s", addr)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "could not stat search path entry %s", addr)
	}

	if info.IsDir() {
		d.entries = append(d.entries, Entry{Path: addr, Kind: kshell.Directory})
		return nil
	}

	if !isArchive(addr) {
		d.cfg.Logf("skipping search path entry %s, it is not an archive", addr)
		return nil
	}

	d.entries = append(d.entries, Entry{Path: addr, Kind: kshell.Archive})

	if !d.cfg.FollowManifest {
		return nil
	}

	manifest, err := ReadManifest(addr)
	if err != nil {
		d.cfg.Logf("ignoring manifest of %s: %s", addr, err)
		return nil
	}
	if manifest == nil {
		return nil
	}
	if err := manifest.Validate(); err != nil {
		d.cfg.Logf("manifest of %s is invalid, following its Class-Path anyway: %s", addr, err)
	}

	for _, ref := range manifest.ClassPath {
		if err := d.add(manifestEntryPath(addr, ref), seen); err != nil {
			return err
		}
	}

	return nil
}

// Wildcards are a trailing *, as in lib/*.  A bare * means
// every jar in the current directory.
func isWildcard(loc string) bool {
	return loc == "*" ||
		strings.HasSuffix(loc, "/*") ||
		strings.HasSuffix(loc, string(filepath.Separator)+"*")
}

// Any regular file that opens as a zip is an archive, regardless of name
func isArchive(path string) bool {
	r, err := zip.OpenReader(path)
	if err != nil {
		return false
	}
	_ = r.Close()
	return true
}

// Class-Path manifest entries are URLs relative to the
// directory containing the archive that declares them.
func manifestEntryPath(archive string, ref string) string {
	p := ref
	if unescaped, err := url.PathUnescape(ref); err == nil {
		p = unescaped
	}

	if strings.HasPrefix(p, "file:") {
		return filepath.FromSlash(fileURLPath(strings.TrimPrefix(p, "file:")))
	}

	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(archive), p)
}

// Strips the leading solidus from a Windows drive path, e.g. /C:/lib -> C:/lib
func fileURLPath(p string) string {
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		return p[1:]
	}
	return p
}
