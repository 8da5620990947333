package main

import (
	"fmt"

	"github.com/sparklin/kshell"
	"github.com/sparklin/kshell/drivers/fs"
	"github.com/urfave/cli"
)

var lsOpts = struct {
	classes bool
	kind    string
}{}

var ls = cli.Command{
	Name:  "ls",
	Usage: "List search path entries",
	Description: `List the expanded search path: wildcards replaced by the archives
	they match, and manifest Class-Path references followed, in search order.

	With --kind, list only entries of that kind (directory or archive).
	With --classes, list the classes each entry provides.`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "kind, k",
			Usage:       "Only list entries of the given kind",
			Destination: &lsOpts.kind,
		},
		cli.BoolFlag{
			Name:        "classes",
			Usage:       "List the classes provided by each entry",
			Destination: &lsOpts.classes,
		},
	},

	Action: func(c *cli.Context) error {
		return lsAction()
	},
}

func lsAction() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	d, err := newDriver(cfg)
	if err != nil {
		return err
	}

	entries, err := entriesOfKind(d.Entries(), lsOpts.kind)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Printf("%-9s    %s\n", e.Kind, e.Path)

		if !lsOpts.classes {
			continue
		}

		classes, err := d.Classes(e)
		if err != nil {
			return err
		}
		for _, class := range classes {
			fmt.Printf("             %s\n", class)
		}
	}

	return nil
}

// Filters entries by kind name.  An empty name matches every entry.
func entriesOfKind(entries []fs.Entry, name string) ([]fs.Entry, error) {
	if name == "" {
		return entries, nil
	}

	kind := kshell.ParseKind(name)
	if kind == kshell.Unknown {
		return nil, fmt.Errorf("unknown entry kind %s", name)
	}

	var filtered []fs.Entry
	for _, e := range entries {
		if e.Kind == kind {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
