package main

import (
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"
	"github.com/sparklin/kshell/classpath"
	"github.com/sparklin/kshell/drivers/fs"
	"github.com/urfave/cli"
)

var classpathOpts = struct {
	repl         bool
	compiler     bool
	noEmbeddable bool
	noStdLib     bool
	output       string
}{}

var classpathCmd = cli.Command{
	Name:  "classpath",
	Usage: "Print the classpath for running the Kotlin compiler or REPL",
	Description: `Resolve the archives that provide the Kotlin standard library, and
	optionally the compiler, the REPL engine, and any additional classes,
	and print them as a single classpath string.

	Every requested component is required.  If one cannot be found on the
	search path, the command fails, naming the missing component.

	For example, to launch a JVM with the embeddable compiler and REPL engine

	  java -cp "$(kshell classpath --compiler --repl)" ...

	With -o, the classpath is written atomically to the given file instead.`,
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:        "repl",
			Usage:       "Include the REPL engine",
			Destination: &classpathOpts.repl,
		},
		cli.BoolFlag{
			Name:        "compiler",
			Usage:       "Include the compiler",
			Destination: &classpathOpts.compiler,
		},
		cli.BoolFlag{
			Name:        "no-embeddable",
			Usage:       "Use the non-embeddable compiler archive",
			Destination: &classpathOpts.noEmbeddable,
		},
		cli.BoolFlag{
			Name:        "no-stdlib",
			Usage:       "Omit the standard library",
			Destination: &classpathOpts.noStdLib,
		},
		cli.StringSliceFlag{
			Name:  "class",
			Usage: "Additional class whose archive is required (repeatable)",
		},
		cli.StringFlag{
			Name:        "output, o",
			Usage:       "Write the classpath to a file",
			Destination: &classpathOpts.output,
		},
	},

	Action: func(c *cli.Context) error {
		return classpathAction(c.StringSlice("class"))
	},
}

func classpathAction(classes []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	d, err := newDriver(cfg)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	opts.IncludeScriptEngine = opts.IncludeScriptEngine || classpathOpts.repl
	opts.IncludeKotlinCompiler = opts.IncludeKotlinCompiler || classpathOpts.compiler
	opts.UseEmbeddableCompiler = opts.UseEmbeddableCompiler && !classpathOpts.noEmbeddable
	opts.IncludeStdLib = opts.IncludeStdLib && !classpathOpts.noStdLib
	opts.AdditionalClasses = append(opts.AdditionalClasses, classes...)

	paths, err := classpath.NewResolver(d, cfg.Catalog).ResolveRequiredJars(opts)
	if err != nil {
		return err
	}

	cp := classpath.Join(paths)
	if classpathOpts.output == "" {
		fmt.Println(cp)
		return nil
	}

	return writeClasspath(classpathOpts.output, cp)
}

func writeClasspath(path, cp string) error {
	w, err := fs.AtomicWrite(path)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, cp+"\n"); err != nil {
		if e := w.Rollback(); e != nil {
			log.Printf("could not roll back write to %s: %s", path, e)
		}
		return errors.Wrapf(err, "could not write classpath to %s", path)
	}

	return w.Close()
}
