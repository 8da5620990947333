package classpath

import (
	"github.com/sparklin/kshell/resolv"
)

// Component names a catalog entry that must be on the classpath
type Component int

// Classpath components
const (
	AdditionalClass Component = iota
	ReplEngine
	Compiler
	StdLib
)

func (c Component) String() string {
	switch c {
	case ReplEngine:
		return "repl engine"
	case Compiler:
		return "compiler"
	case StdLib:
		return "standard library"
	default:
		return "additional class"
	}
}

// Well known classes, whose containing archives make up a Kotlin toolchain
const (
	CompilerClass   = "org.jetbrains.kotlin.cli.jvm.K2JVMCompiler"
	StdLibClass     = "kotlin.Pair"
	ReplEngineClass = "org.jetbrains.kotlin.cli.jvm.repl.GenericReplCompiler"
)

// Archive name filters for catalog entries
var (
	EmbeddableCompilerFilter = resolv.MustCompileFilter(`.*/kotlin-compiler-embeddable.*\.jar`)
	CompilerFilter           = resolv.MustCompileFilter(`.*/kotlin-compiler-(?!embeddable).*\.jar`)
	StdLibFilter             = resolv.MustCompileFilter(`.*/kotlin-stdlib.*\.jar`)
)

// Catalog names the class used to identify each well known component.  Any
// empty field falls back to the default class.
type Catalog struct {
	Compiler   string `yaml:"compiler"`
	StdLib     string `yaml:"stdlib"`
	ReplEngine string `yaml:"replEngine"`
}

// DefaultCatalog identifies components by the classes of a stock Kotlin distribution
func DefaultCatalog() Catalog {
	return Catalog{
		Compiler:   CompilerClass,
		StdLib:     StdLibClass,
		ReplEngine: ReplEngineClass,
	}
}

func (c Catalog) withDefaults() Catalog {
	d := DefaultCatalog()
	if c.Compiler != "" {
		d.Compiler = c.Compiler
	}
	if c.StdLib != "" {
		d.StdLib = c.StdLib
	}
	if c.ReplEngine != "" {
		d.ReplEngine = c.ReplEngine
	}
	return d
}

// Requirement describes one catalog entry to be resolved
type Requirement struct {
	Component Component
	Class     string
	Filter    *resolv.Filter
	Required  bool
}

// Options selects the components to put on the classpath
type Options struct {
	IncludeScriptEngine   bool
	IncludeKotlinCompiler bool
	UseEmbeddableCompiler bool // otherwise, the non-embeddable compiler
	IncludeStdLib         bool
	AdditionalClasses     []string
}

// DefaultOptions includes only the standard library, and prefers the
// embeddable compiler should the compiler be included
func DefaultOptions() Options {
	return Options{
		UseEmbeddableCompiler: true,
		IncludeStdLib:         true,
	}
}

// Requirements lists the catalog entries selected by the given options, in resolution
// order: additional classes, REPL engine, compiler, standard library.
func (c Catalog) Requirements(opts Options) []Requirement {
	catalog := c.withDefaults()

	var reqs []Requirement
	for _, class := range opts.AdditionalClasses {
		reqs = append(reqs, Requirement{
			Component: AdditionalClass,
			Class:     class,
			Filter:    resolv.MatchAll,
			Required:  true,
		})
	}

	if opts.IncludeScriptEngine {
		reqs = append(reqs, Requirement{
			Component: ReplEngine,
			Class:     catalog.ReplEngine,
			Filter:    resolv.MatchAll,
			Required:  true,
		})
	}

	if opts.IncludeKotlinCompiler {
		reqs = append(reqs, Requirement{
			Component: Compiler,
			Class:     catalog.Compiler,
			Filter:    compilerFilter(opts.UseEmbeddableCompiler),
			Required:  true,
		})
	}

	if opts.IncludeStdLib {
		reqs = append(reqs, Requirement{
			Component: StdLib,
			Class:     catalog.StdLib,
			Filter:    StdLibFilter,
			Required:  true,
		})
	}

	return reqs
}

func compilerFilter(embeddable bool) *resolv.Filter {
	if embeddable {
		return EmbeddableCompilerFilter
	}
	return CompilerFilter
}
