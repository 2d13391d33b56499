// Package config resolves driver configuration from defaults, an optional
// YAML file and environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/plumekit/gjf/internal/fsh"
	"github.com/plumekit/gjf/internal/validator"
)

// ConfigFile is the name of the optional per-directory configuration file.
const ConfigFile = ".gjf.yml"

// Environment variables recognised by the driver. They take precedence over
// the configuration file, which takes precedence over the built-in defaults.
const (
	EnvConfig    = "GJF_CONFIG"     // path to an explicit config file
	EnvJava      = "GJF_JAVA"       // java launcher command
	EnvJarPath   = "GJF_JAR_PATH"   // pinned formatter jar, skips resolution
	EnvFixupPath = "GJF_FIXUP_PATH" // pinned fixup script, skips resolution
	EnvCacheDir  = "GJF_CACHE_DIR"  // extra artifact directories (list separator)
	EnvDebug     = "GJF_DEBUG"      // 1/true enables debug logging
)

// The formatter release the driver is pinned to. The fixup script is
// unversioned upstream.
const (
	GJFVersion = "1.0"
	JarName    = "google-java-format-" + GJFVersion + "-all-deps.jar"
	JarURL     = "https://github.com/google/google-java-format/releases/download/" +
		"google-java-format-" + GJFVersion + "/" + JarName
	FixupName = "fixup-google-java-format.py"
	FixupURL  = "https://raw.githubusercontent.com/mernst/plume-lib/master/bin/" + FixupName
)

// Config holds the fully resolved driver configuration.
type Config struct {
	// Java is the launcher command used to run the formatter jar.
	Java string `yaml:"java"`

	// JarURL and FixupURL are the download locations used when no local
	// copy of an artifact is found.
	JarURL   string `yaml:"jarUrl"`
	FixupURL string `yaml:"fixupUrl"`

	// JarPath and FixupPath pin an artifact to an explicit file,
	// bypassing the candidate-directory probe and any download.
	JarPath   string `yaml:"jarPath"`
	FixupPath string `yaml:"fixupPath"`

	// CacheDirs is the ordered list of directories probed for artifacts.
	// The first entry is also where downloads land.
	CacheDirs []string `yaml:"cacheDirs"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration. CacheDirs is left empty;
// Load fills it with the executable-relative defaults.
func Default() *Config {
	return &Config{
		Java:     "java",
		JarURL:   JarURL,
		FixupURL: FixupURL,
	}
}

// JarName returns the file name the formatter jar is stored under, derived
// from the download URL so a URL override moves the cache name with it.
func (c *Config) JarName() string {
	return filepath.Base(c.JarURL)
}

// FixupName returns the file name the fixup script is stored under.
func (c *Config) FixupName() string {
	return filepath.Base(c.FixupURL)
}

// Load resolves the configuration: defaults, then the config file if one
// exists, then environment overrides. The file is validated against the
// embedded JSON Schema before decoding.
func Load(env fsh.EnvProvider, paths fsh.PathResolver) (*Config, error) {
	cfg := Default()

	path, explicit := configPath(env)
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.decode(data); err != nil {
				return nil, err
			}
		case explicit:
			return nil, &MissingConfigError{Path: path}
		}
	}

	cfg.applyEnv(env)

	if len(cfg.CacheDirs) == 0 {
		cfg.CacheDirs = defaultCacheDirs(paths)
	}

	return cfg, nil
}

// configPath returns the config file to try and whether it was explicitly
// requested (in which case absence is an error).
func configPath(env fsh.EnvProvider) (string, bool) {
	if p := env.Get(EnvConfig); p != "" {
		return p, true
	}
	if fsh.IsFile(ConfigFile) {
		return ConfigFile, false
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ConfigFile)
		if fsh.IsFile(p) {
			return p, false
		}
	}
	return "", false
}

// decode validates raw YAML against the config schema and unmarshals it.
func (c *Config) decode(data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &InvalidYAMLError{Wrapped: err}
	}

	if doc != nil {
		if err := validateDocument(doc); err != nil {
			return &InvalidConfigError{Wrapped: err}
		}
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return &InvalidYAMLError{Wrapped: err}
	}
	return nil
}

func (c *Config) applyEnv(env fsh.EnvProvider) {
	if v := env.Get(EnvJava); v != "" {
		c.Java = v
	}
	if v := env.Get(EnvJarPath); v != "" {
		c.JarPath = v
	}
	if v := env.Get(EnvFixupPath); v != "" {
		c.FixupPath = v
	}
	if v := env.Get(EnvCacheDir); v != "" {
		c.CacheDirs = append(filepath.SplitList(v), c.CacheDirs...)
	}
	if v := env.Get(EnvDebug); v != "" {
		c.Debug = v == "1" || strings.EqualFold(v, "true")
	}
}

// defaultCacheDirs mirrors the classic layout: the directory holding the
// executable, then a "lib" directory beside it.
func defaultCacheDirs(paths fsh.PathResolver) []string {
	dir, err := paths.ExecutableDir()
	if err != nil {
		return []string{"."}
	}
	return []string{dir, filepath.Join(filepath.Dir(dir), "lib")}
}

// validateDocument checks a decoded YAML document against the config schema.
func validateDocument(doc interface{}) error {
	parsed, err := validator.ParseSchema(configSchema)
	if err != nil {
		return err
	}

	c := validator.NewSanthoshCompiler()
	if err := c.AddSchema(configSchemaID, parsed); err != nil {
		return err
	}
	v, err := c.Compile(configSchemaID)
	if err != nil {
		return err
	}
	return v.Validate(doc)
}
