package fs

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
	"github.com/sparklin/kshell"
	"github.com/sparklin/kshell/fspath"
)

const (
	dontGoDeeper = true
	goDeeper     = false
)

// Expands a wildcard directory into the archives directly inside it.  As with
// a JVM, only .jar files are matched and subdirectories are not searched.
// The result is sorted by name.
func expandWildcard(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "could not expand wildcard in %s", dir)
	}

	var archives []string
	for _, de := range dirents {
		if !strings.EqualFold(filepath.Ext(de.Name()), ".jar") {
			continue
		}

		path := filepath.Join(dir, de.Name())
		if de.IsSymlink() {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		} else if !de.IsRegular() {
			continue
		}

		archives = append(archives, path)
	}

	sort.Strings(archives)
	return archives, nil
}

// Classes lists the fully qualified names of every class provided
// by the given search path entry, sorted.
func (d *Driver) Classes(e Entry) ([]string, error) {
	var classes []string

	switch e.Kind {
	case kshell.Directory:
		err := fsWalk(e.Path, func(ospath string, de *godirwalk.Dirent) (bool, error) {
			if de.IsDir() {
				return goDeeper, nil
			}

			rel, err := filepath.Rel(e.Path, ospath)
			if err != nil {
				return dontGoDeeper, errors.Wrapf(err, "could not relativize %s", ospath)
			}

			if class, ok := fspath.ClassName(filepath.ToSlash(rel)); ok {
				classes = append(classes, class)
			}
			return dontGoDeeper, nil
		})
		if err != nil {
			return nil, err
		}
	case kshell.Archive:
		r, err := zip.OpenReader(e.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open archive %s", e.Path)
		}
		defer r.Close()

		for _, f := range r.File {
			if class, ok := fspath.ClassName(f.Name); ok {
				classes = append(classes, class)
			}
		}
	default:
		return nil, errors.Errorf("cannot list classes of %s entry %s", e.Kind, e.Path)
	}

	sort.Strings(classes)
	return classes, nil
}

type skip struct {
	action godirwalk.ErrorAction
}

func (skip) Error() string {
	return "node is skipped"
}

// Callback to be invoked each time a fs entry is encountered.
// Returns a Boolean indicating whether the current fs entry should be a
// considered a terminal (leaf) node.  If true, any children will not be
// walked.  Any error will terminate a walk entirely.
type fsCallback func(ospath string, e *godirwalk.Dirent) (terminal bool, err error)

func fsWalk(dir string, f fsCallback) error {

	if _, err := os.Stat(dir); err != nil {
		return errors.Wrapf(err, "error walking directory %s", dir)
	}

	return godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(ospath string, dirent *godirwalk.Dirent) error {
			terminal, err := f(ospath, dirent)
			if err != nil {
				return errors.Wrap(err, "terminating walk due to error")
			}
			if terminal {
				return skip{godirwalk.SkipNode}
			}
			return nil
		},
		ErrorCallback: func(ospath string, err error) godirwalk.ErrorAction {
			s, skip := errors.Cause(err).(skip)
			if skip {
				return s.action
			}

			return godirwalk.Halt
		},
		Unsorted:            true,
		FollowSymbolicLinks: true,
	},
	)
}
