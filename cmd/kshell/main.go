package main

import (
	"log"
	"os"

	"github.com/sparklin/kshell/config"
	"github.com/sparklin/kshell/drivers/fs"
	"github.com/urfave/cli"
)

var mainOpts = struct {
	config    string
	classpath string
	verbose   bool
}{}

func main() {
	app := cli.NewApp()
	app.Name = "kshell"
	app.Usage = "Kotlin REPL classpath utilities"
	app.EnableBashCompletion = true
	app.Commands = []cli.Command{
		classpathCmd,
		javaversion,
		locate,
		ls,
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config, c",
			Usage:       "YAML config file",
			EnvVar:      "KSHELL_CONFIG",
			Value:       "kshell.yaml",
			Destination: &mainOpts.config,
		},
		cli.StringFlag{
			Name:        "classpath, cp",
			Usage:       "Search path (overrides config and environment)",
			Destination: &mainOpts.classpath,
		},
		cli.BoolFlag{
			Name:        "verbose",
			Usage:       "Report skipped search path entries",
			Destination: &mainOpts.verbose,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(mainOpts.config)
	if err != nil {
		return nil, err
	}

	if mainOpts.classpath != "" {
		cfg.ClassPath = fs.SplitList(mainOpts.classpath)
	}
	return cfg, nil
}

func newDriver(cfg *config.Config) (*fs.Driver, error) {
	dcfg := cfg.DriverConfig()
	if mainOpts.verbose {
		dcfg.Logf = log.Printf
	}

	return fs.NewDriver(dcfg)
}
