package metadata

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
)

// ManifestFile is the location of the manifest within an archive
const ManifestFile = "META-INF/MANIFEST.MF"

// Max length, in bytes, of a manifest line, not counting the line terminator
const maxLineLength = 72

// Well known main section attribute names
const (
	ManifestVersion       = "Manifest-Version"
	CreatedBy             = "Created-By"
	MainClass             = "Main-Class"
	ClassPath             = "Class-Path"
	ImplementationTitle   = "Implementation-Title"
	ImplementationVersion = "Implementation-Version"
)

// Manifest defines the main section of a JAR manifest.
type Manifest struct {
	Version               string
	CreatedBy             string
	MainClass             string
	ClassPath             []string
	ImplementationTitle   string
	ImplementationVersion string

	// Attributes holds any other main section attributes, in the order
	// they were declared.
	Attributes Attributes
}

// Attribute is a single manifest header
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an ordered list of manifest headers
type Attributes []Attribute

// Get returns the value of the named attribute.  Attribute names are case insensitive.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if strings.EqualFold(attr.Name, name) {
			return attr.Value, true
		}
	}
	return "", false
}

// Parse parses a byte stream into manifest metadata.  Only the main section
// (everything up to the first blank line) is read.
func Parse(r io.Reader, m *Manifest) error {

	content, err := ioutil.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "could not read manifest")
	}

	text := strings.Replace(string(content), "\r\n", "\n", -1)
	text = strings.Replace(text, "\r", "\n", -1)

	var attrs Attributes
	for n, line := range strings.Split(text, "\n") {
		if line == "" {
			break
		}

		// Continuation of the previous header
		if line[0] == ' ' {
			if len(attrs) == 0 {
				return fmt.Errorf("manifest line %d: continuation without a header", n+1)
			}
			attrs[len(attrs)-1].Value += line[1:]
			continue
		}

		sep := strings.Index(line, ": ")
		if sep <= 0 {
			if strings.HasSuffix(line, ":") && len(line) > 1 {
				attrs = append(attrs, Attribute{Name: line[:len(line)-1]})
				continue
			}
			return fmt.Errorf("manifest line %d: malformed header %q", n+1, line)
		}
		attrs = append(attrs, Attribute{Name: line[:sep], Value: line[sep+2:]})
	}

	*m = Manifest{}
	for _, attr := range attrs {
		switch {
		case strings.EqualFold(attr.Name, ManifestVersion):
			m.Version = attr.Value
		case strings.EqualFold(attr.Name, CreatedBy):
			m.CreatedBy = attr.Value
		case strings.EqualFold(attr.Name, MainClass):
			m.MainClass = attr.Value
		case strings.EqualFold(attr.Name, ClassPath):
			m.ClassPath = append(m.ClassPath, strings.Fields(attr.Value)...)
		case strings.EqualFold(attr.Name, ImplementationTitle):
			m.ImplementationTitle = attr.Value
		case strings.EqualFold(attr.Name, ImplementationVersion):
			m.ImplementationVersion = attr.Value
		default:
			m.Attributes = append(m.Attributes, attr)
		}
	}

	return nil
}

// Serialize writes the main section of the manifest, wrapping long headers
// onto continuation lines.
func (m *Manifest) Serialize(w io.Writer) error {
	bw := bufio.NewWriter(w)

	headers := Attributes{
		{ManifestVersion, m.Version},
		{CreatedBy, m.CreatedBy},
		{MainClass, m.MainClass},
		{ClassPath, strings.Join(m.ClassPath, " ")},
		{ImplementationTitle, m.ImplementationTitle},
		{ImplementationVersion, m.ImplementationVersion},
	}

	for _, h := range append(headers, m.Attributes...) {
		if h.Value == "" {
			continue
		}
		if err := writeHeader(bw, h); err != nil {
			return err
		}
	}

	if _, err := bw.WriteString("\r\n"); err != nil {
		return errors.Wrap(err, "could not write manifest")
	}
	return errors.Wrap(bw.Flush(), "could not write manifest")
}

func writeHeader(w *bufio.Writer, h Attribute) error {
	line := h.Name + ": " + h.Value

	for {
		n := len(line)
		if n > maxLineLength {
			n = maxLineLength
		}
		if _, err := w.WriteString(line[:n] + "\r\n"); err != nil {
			return errors.Wrapf(err, "could not write header %s", h.Name)
		}
		line = line[n:]
		if line == "" {
			return nil
		}

		// Continuation lines start with a single space
		line = " " + line
	}
}
