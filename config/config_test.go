package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sparklin/kshell/classpath"
	"github.com/sparklin/kshell/config"
	"github.com/sparklin/kshell/repl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
classpath:
  - lib/*
  - build/classes
followManifest: false
include:
  compiler: true
  embeddableCompiler: false
  replEngine: true
additionalClasses:
  - sparklin.kshell.KotlinShell
catalog:
  stdlib: kotlin.Unit
javaVersion: "1.8"
`

func clearEnv(t *testing.T) {
	for _, env := range []string{config.ClassPathEnv, config.FallbackClassPathEnv, config.JavaVersionEnv} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "kshell.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0664))
	return path
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"lib/*", "build/classes"}, cfg.ClassPath)
	assert.Equal(t, "kotlin.Unit", cfg.Catalog.StdLib)
	assert.Equal(t, 0x10008, cfg.RuntimeVersion())

	assert.Equal(t, classpath.Options{
		IncludeScriptEngine:   true,
		IncludeKotlinCompiler: true,
		UseEmbeddableCompiler: false,
		IncludeStdLib:         true,
		AdditionalClasses:     []string{"sparklin.kshell.KotlinShell"},
	}, cfg.Options())

	d := cfg.DriverConfig()
	assert.False(t, d.FollowManifest)
	assert.Equal(t, cfg.ClassPath, d.Entries)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	for name, path := range map[string]string{
		"noFile":      "",
		"missingFile": filepath.Join(t.TempDir(), "DOES_NOT_EXIST.yaml"),
		"emptyFile":   writeConfig(t, ""),
	} {
		path := path
		t.Run(name, func(t *testing.T) {
			cfg, err := config.Load(path)
			require.NoError(t, err)

			assert.Equal(t, classpath.DefaultOptions(), cfg.Options())
			assert.True(t, cfg.DriverConfig().FollowManifest)
			assert.Empty(t, cfg.ClassPath)
			assert.Equal(t, repl.DefaultRuntimeVersion, cfg.RuntimeVersion())
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	sep := string(os.PathListSeparator)

	t.Setenv(config.ClassPathEnv, strings.Join([]string{"a.jar", "classes"}, sep))
	t.Setenv(config.FallbackClassPathEnv, "ignored.jar")
	t.Setenv(config.JavaVersionEnv, "17")

	cfg, err := config.Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.jar", "classes"}, cfg.ClassPath)
	assert.Equal(t, 17*0x10000, cfg.RuntimeVersion())
}

func TestLoadFallbackClassPath(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.FallbackClassPathEnv, "fallback.jar")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"fallback.jar"}, cfg.ClassPath)

	// the config file wins over CLASSPATH
	cfg, err = config.Load(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/*", "build/classes"}, cfg.ClassPath)
}

func TestLoadMalformed(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(writeConfig(t, "classpath: [unclosed"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	cases := []struct {
		name    string
		dotenv  string
		version int
		isErr   bool
	}{
		{"valid", "JAVA_SPECIFICATION_VERSION=11\n", 11 * 0x10000, false},
		{"malformed", "NOT-A-KEY=1\n", 0, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			clearEnv(t)
			inDir(t, t.TempDir())
			require.NoError(t, os.WriteFile(".env", []byte(c.dotenv), 0664))

			cfg, err := config.Load("")
			if c.isErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.version, cfg.RuntimeVersion())
		})
	}
}

func inDir(t *testing.T, dir string) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestProperty(t *testing.T) {
	cfg := &config.Config{JavaVersion: "11"}

	v, ok := cfg.Property(repl.SpecificationVersionProperty)
	assert.True(t, ok)
	assert.Equal(t, "11", v)

	_, ok = cfg.Property("java.home")
	assert.False(t, ok)
}
