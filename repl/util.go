package repl

import (
	"fmt"
	"strconv"
	"strings"
)

// CodeLine identifies a line of REPL input.  Part is non-zero when one line
// of input was split into several compiled units.
type CodeLine struct {
	No   int
	Part int
}

// FileBaseName returns the name of the compiled unit for a line of input,
// e.g. Line_3, or Line_3_2 for the second part of line 3.
func FileBaseName(line CodeLine) string {
	if line.Part != 0 {
		return fmt.Sprintf("Line_%d_%d", line.No, line.Part)
	}
	return fmt.Sprintf("Line_%d", line.No)
}

// SpecificationVersionProperty is the runtime property holding the runtime
// specification version, e.g. "1.8" or "17"
const SpecificationVersionProperty = "java.specification.version"

// DefaultRuntimeVersion is assumed when the runtime version is unknown or
// malformed.  It encodes 1.6.
const DefaultRuntimeVersion = 0x10006

// ParseRuntimeVersion encodes a dotted runtime version as major*0x10000 + minor, so
// versions compare by magnitude.  Components after the minor version are ignored.
// An empty or non-numeric version, or one with a component outside the 32 bit
// range, yields DefaultRuntimeVersion.
func ParseRuntimeVersion(version string) int {
	components := strings.Split(version, ".")

	major, err := versionComponent(components[0])
	if err != nil {
		return DefaultRuntimeVersion
	}

	if len(components) == 1 {
		return major * 0x10000
	}

	minor, err := versionComponent(components[1])
	if err != nil {
		return DefaultRuntimeVersion
	}

	return major*0x10000 + minor
}

func versionComponent(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	return int(n), err
}

// RuntimeVersion reads and parses the runtime specification version, using the given
// property lookup.  An absent property yields DefaultRuntimeVersion.
func RuntimeVersion(lookup func(property string) (string, bool)) int {
	version, ok := lookup(SpecificationVersionProperty)
	if !ok {
		return DefaultRuntimeVersion
	}
	return ParseRuntimeVersion(version)
}

// FormatRuntimeVersion renders an encoded runtime version as major.minor
func FormatRuntimeVersion(version int) string {
	return fmt.Sprintf("%d.%d", version/0x10000, version%0x10000)
}
