package resolv

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Scheme names the kind of a resource URL
type Scheme int

// Resource URL schemes
const (
	Unsupported  Scheme = iota
	ArchiveEntry        // zip:<archive>!/<entry> or jar:file:<archive>!/<entry>
	LooseFile           // file:<base dir>/<resource>
)

func (s Scheme) String() string {
	switch s {
	case ArchiveEntry:
		return "archive-entry"
	case LooseFile:
		return "loose-file"
	default:
		return "unsupported"
	}
}

const (
	archiveSeparator = "!/"
	filePrefix       = "file:"
)

var archivePrefixes = []string{"zip:", "jar:file:"}

// URL is a resource URL, broken down by scheme
type URL struct {
	Scheme Scheme
	Raw    string
	Path   string // archive path, or path of the loose file
	Entry  string // path within the archive, if any
}

// Parse classifies a raw resource URL.  It never fails; URLs it does not
// understand have the Unsupported scheme.
func Parse(raw string) URL {
	for _, prefix := range archivePrefixes {
		if !strings.HasPrefix(raw, prefix) {
			continue
		}

		// Resource names never contain !/, but archive paths may
		rest := strings.TrimPrefix(raw, prefix)
		sep := strings.LastIndex(rest, archiveSeparator)
		if sep <= 0 {
			return URL{Raw: raw}
		}

		return URL{
			Scheme: ArchiveEntry,
			Raw:    raw,
			Path:   rest[:sep],
			Entry:  rest[sep+len(archiveSeparator):],
		}
	}

	if strings.HasPrefix(raw, filePrefix) && len(raw) > len(filePrefix) {
		return URL{
			Scheme: LooseFile,
			Raw:    raw,
			Path:   strings.TrimPrefix(raw, filePrefix),
		}
	}

	return URL{Raw: raw}
}

// BaseFile normalizes the URL into the filesystem path of the search path entry that
// provided the given resource: the archive for archive entries, or the base
// directory for loose files.
func (u URL) BaseFile(resource string) (string, error) {
	switch u.Scheme {
	case ArchiveEntry:
		return localPath(u.Path)
	case LooseFile:
		p, err := localPath(u.Path)
		if err != nil {
			return "", err
		}

		suffix := "/" + strings.TrimLeft(resource, "/")
		slashed := filepath.ToSlash(p)
		if !strings.HasSuffix(slashed, suffix) {
			return "", fmt.Errorf("file URL %s does not name resource %s", u.Raw, resource)
		}

		base := strings.TrimSuffix(slashed, suffix)
		if base == "" {
			base = "/"
		}
		return filepath.FromSlash(base), nil
	default:
		return "", fmt.Errorf("unsupported resource URL %s", u.Raw)
	}
}

// Decodes a URL path into a local path.  Authorities (file://host/...) are
// dropped, as is the solidus before a Windows drive letter.
func localPath(p string) (string, error) {
	if strings.HasPrefix(p, "//") {
		rest := p[2:]
		if i := strings.Index(rest, "/"); i >= 0 {
			p = rest[i:]
		} else {
			p = "/"
		}
	}

	decoded, err := url.PathUnescape(p)
	if err != nil {
		return "", fmt.Errorf("malformed URL path %s: %s", p, err)
	}

	if isDrivePath(decoded) {
		decoded = decoded[1:]
	}

	return filepath.FromSlash(decoded), nil
}

// e.g. /C:/Users
func isDrivePath(p string) bool {
	if len(p) < 3 || p[0] != '/' || p[2] != ':' {
		return false
	}
	c := p[1]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
