package main

import (
	"fmt"

	"github.com/sparklin/kshell/repl"
	"github.com/urfave/cli"
)

var javaversion = cli.Command{
	Name:  "javaversion",
	Usage: "Print the runtime specification version the REPL targets",
	Description: `Read the runtime specification version from the config file or
	JAVA_SPECIFICATION_VERSION and print it along with its encoded form.
	An absent or malformed version is reported as 1.6.`,
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		v := cfg.RuntimeVersion()
		fmt.Printf("%s (0x%x)\n", repl.FormatRuntimeVersion(v), v)
		return nil
	},
}
