package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sparklin/kshell/resolv"
	"github.com/urfave/cli"
)

var locateOpts = struct {
	filter string
	all    bool
}{}

var locate = cli.Command{
	Name:  "locate",
	Usage: "Find the archive or class directory that provides a class",
	Description: `Given a fully qualified class name, print the search path entry
	(archive, or base directory of loose class files) that provides it.

	A filter restricts the match to entries whose whole path matches a
	regular expression.  For example, the following finds the compiler
	in any kotlin-compiler archive that is not the embeddable one

	  kshell locate -f '.*/kotlin-compiler-(?!embeddable).*\.jar' \
	      org.jetbrains.kotlin.cli.jvm.K2JVMCompiler

	With --all, every entry providing the class is listed, in search order,
	regardless of filter.`,
	ArgsUsage: "class",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "filter, f",
			Usage:       "Regular expression the entry path must match",
			Value:       ".*",
			Destination: &locateOpts.filter,
		},
		cli.BoolFlag{
			Name:        "all, a",
			Usage:       "List every entry providing the class",
			Destination: &locateOpts.all,
		},
	},

	Action: func(c *cli.Context) error {
		return locateAction(c.Args())
	},
}

func locateAction(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("locate takes exactly one class name")
	}
	class := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	d, err := newDriver(cfg)
	if err != nil {
		return err
	}

	l := resolv.NewLocator(d)

	if locateOpts.all {
		candidates, err := l.Candidates(class)
		if err != nil {
			return errors.Wrapf(err, "could not locate %s", class)
		}
		for _, c := range candidates {
			fmt.Println(c)
		}
		return nil
	}

	filter, err := resolv.CompileFilter(locateOpts.filter)
	if err != nil {
		return err
	}

	path, found, err := l.Locate(class, filter)
	if err != nil {
		return errors.Wrapf(err, "could not locate %s", class)
	}
	if !found {
		return fmt.Errorf("class %s not found on the search path", class)
	}

	fmt.Println(path)
	return nil
}
