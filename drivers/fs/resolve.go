package fs

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sparklin/kshell"
	"golang.org/x/sync/errgroup"
)

// Max number of search path entries probed at once
const probeLimit = 8

// Characters escaped in resource URLs, as a JVM's file URLs would escape them
var urlEscaper = strings.NewReplacer("%", "%25", " ", "%20", "#", "%23", "?", "%3F")

// Resources enumerates the URLs of every search path entry that contains
// the named resource, in search path order.  Class directories produce file: URLs,
// zip archives produce zip: URLs, and all other archives produce jar:file: URLs.
//
// Entries are probed concurrently, but the result order is always the search path
// order.  An absent resource results in an empty slice.
func (d *Driver) Resources(name string) ([]string, error) {
	name = strings.TrimLeft(name, "/")
	if name == "" {
		return nil, nil
	}

	found := make([]string, len(d.entries))

	var g errgroup.Group
	g.SetLimit(probeLimit)
	for i := range d.entries {
		i := i
		g.Go(func() error {
			url, err := d.entries[i].probe(name)
			found[i] = url
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "error looking up resource %s", name)
	}

	var urls []string
	for _, url := range found {
		if url != "" {
			urls = append(urls, url)
		}
	}
	return urls, nil
}

// Returns the URL of the named resource within this entry, or an
// empty string if it is not present.
func (e Entry) probe(name string) (string, error) {
	switch e.Kind {
	case kshell.Directory:
		return probeDirectory(e.Path, name)
	case kshell.Archive:
		return probeArchive(e.Path, name)
	default:
		return "", nil
	}
}

func probeDirectory(dir, name string) (string, error) {
	path := filepath.Join(dir, filepath.FromSlash(name))

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "could not stat %s", path)
	}

	return "file:" + urlPath(path), nil
}

func probeArchive(archive, name string) (string, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return "", errors.Wrapf(err, "could not open archive %s", archive)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == name {
			return archiveURL(archive, name), nil
		}
	}

	return "", nil
}

func archiveURL(archive, name string) string {
	if strings.EqualFold(filepath.Ext(archive), ".zip") {
		return "zip:" + urlPath(archive) + "!/" + name
	}
	return "jar:file:" + urlPath(archive) + "!/" + name
}

// Converts an absolute OS path into the path portion of a URL
func urlPath(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return urlEscaper.Replace(p)
}
