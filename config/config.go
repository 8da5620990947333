// Package config loads the search path and classpath options for a REPL host from a
// YAML file, a .env file, and the environment.
package config

import (
	"io/ioutil"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sparklin/kshell/classpath"
	"github.com/sparklin/kshell/drivers/fs"
	"github.com/sparklin/kshell/repl"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the config file
const (
	ClassPathEnv         = "KSHELL_CLASSPATH"
	FallbackClassPathEnv = "CLASSPATH"
	JavaVersionEnv       = "JAVA_SPECIFICATION_VERSION"
)

// Config is the on-disk (YAML) form of a REPL host configuration
type Config struct {
	ClassPath         []string          `yaml:"classpath"`
	FollowManifest    *bool             `yaml:"followManifest"`
	Include           Include           `yaml:"include"`
	AdditionalClasses []string          `yaml:"additionalClasses"`
	Catalog           classpath.Catalog `yaml:"catalog"`
	JavaVersion       string            `yaml:"javaVersion"`
}

// Include selects classpath components.  Unset values take their defaults.
type Include struct {
	ReplEngine         *bool `yaml:"replEngine"`
	Compiler           *bool `yaml:"compiler"`
	EmbeddableCompiler *bool `yaml:"embeddableCompiler"`
	StdLib             *bool `yaml:"stdlib"`
}

// Load loads configuration from the YAML file at the given path, which may be empty
// or absent, then applies defaults and environment overrides.  A .env file in the
// working directory, if any, is loaded into the environment first.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrapf(err, "could not load .env")
	}

	var cfg Config
	if path != "" {
		content, err := ioutil.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "could not read config file %s", path)
		}

		if err == nil {
			if err := Parse(content, &cfg); err != nil {
				return nil, errors.Wrapf(err, "could not parse config file %s", path)
			}
		}
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)

	return &cfg, nil
}

// Parse parses YAML configuration
func Parse(content []byte, cfg *Config) error {
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return errors.Wrap(err, "malformed config")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	defaults := classpath.DefaultOptions()
	setDefault(&cfg.FollowManifest, true)
	setDefault(&cfg.Include.ReplEngine, defaults.IncludeScriptEngine)
	setDefault(&cfg.Include.Compiler, defaults.IncludeKotlinCompiler)
	setDefault(&cfg.Include.EmbeddableCompiler, defaults.UseEmbeddableCompiler)
	setDefault(&cfg.Include.StdLib, defaults.IncludeStdLib)
}

func setDefault(b **bool, value bool) {
	if *b == nil {
		*b = &value
	}
}

func applyEnv(cfg *Config) {
	if cp, ok := os.LookupEnv(ClassPathEnv); ok {
		cfg.ClassPath = fs.SplitList(cp)
	} else if len(cfg.ClassPath) == 0 {
		cfg.ClassPath = fs.SplitList(os.Getenv(FallbackClassPathEnv))
	}

	if v := os.Getenv(JavaVersionEnv); v != "" {
		cfg.JavaVersion = v
	}
}

// Options returns the classpath options selected by the config
func (c *Config) Options() classpath.Options {
	return classpath.Options{
		IncludeScriptEngine:   isSet(c.Include.ReplEngine),
		IncludeKotlinCompiler: isSet(c.Include.Compiler),
		UseEmbeddableCompiler: isSet(c.Include.EmbeddableCompiler),
		IncludeStdLib:         isSet(c.Include.StdLib),
		AdditionalClasses:     c.AdditionalClasses,
	}
}

func isSet(b *bool) bool {
	return b != nil && *b
}

// DriverConfig returns the search path configuration for a filesystem driver
func (c *Config) DriverConfig() fs.Config {
	return fs.Config{
		Entries:        c.ClassPath,
		FollowManifest: isSet(c.FollowManifest),
	}
}

// Property looks up a runtime property.  Only the specification version is known.
func (c *Config) Property(name string) (string, bool) {
	if name == repl.SpecificationVersionProperty && c.JavaVersion != "" {
		return c.JavaVersion, true
	}
	return "", false
}

// RuntimeVersion returns the encoded runtime version the config targets
func (c *Config) RuntimeVersion() int {
	return repl.RuntimeVersion(c.Property)
}
