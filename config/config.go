package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/navpanel/errors"
	"github.com/grovetools/navpanel/logging"
	"github.com/grovetools/navpanel/pkg/paths"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// ConfigNames are the file names FindConfigFile looks for, in order.
var ConfigNames = []string{
	"navpanel.yml",
	"navpanel.yaml",
	"navpanel.toml",
	"navpanel.json",
	"NavigationModules.json",
}

// Load reads and parses a single configuration file. The global
// configuration is not consulted.
func Load(path string) (*Config, error) {
	cfg, err := loadRaw(path, projectLayer)
	if err != nil {
		return nil, err
	}
	return finalize(cfg, path)
}

// LoadDefault finds and loads the configuration starting from the working directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom finds the configuration file for startDir and loads it on top
// of the global configuration.
func LoadFrom(startDir string) (*Config, error) {
	return LoadFromWithLogger(startDir, logging.NewLogger("config"))
}

// LoadFromWithLogger is LoadFrom with an explicit logger.
func LoadFromWithLogger(startDir string, logger logrus.FieldLogger) (*Config, error) {
	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}
	return LoadWithGlobal(projectPath, logger)
}

// LoadWithGlobal loads path with hierarchical merging:
// 1. Global config ($XDG_CONFIG_HOME/navpanel/navpanel.yml) - panel, tui and logging defaults
// 2. The file at path - overrides global and always supplies the modules
func LoadWithGlobal(path string, logger logrus.FieldLogger) (*Config, error) {
	logger.WithField("path", path).Debug("Loading configuration")

	projectConfig, err := loadRaw(path, projectLayer)
	if err != nil {
		return nil, err
	}

	finalConfig := projectConfig
	globalPath := paths.GlobalConfigFile()
	if globalPath != "" && !samePath(globalPath, path) {
		if _, statErr := os.Stat(globalPath); statErr == nil {
			logger.WithField("path", globalPath).Debug("Loading global configuration")
			globalConfig, err := loadRaw(globalPath, globalLayer)
			if err != nil {
				logger.WithError(err).Warn("Failed to load global configuration, continuing without it")
			} else {
				finalConfig = mergeConfigs(globalConfig, projectConfig)
			}
		}
	}

	cfg, err := finalize(finalConfig, path)
	if err != nil {
		return nil, err
	}

	logger.WithField("modules", len(cfg.Modules)).Debug("Configuration loaded and validated successfully")

	if entry, ok := logger.(*logrus.Entry); ok && entry.Logger.IsLevelEnabled(logrus.DebugLevel) {
		if data, err := yaml.Marshal(cfg); err == nil {
			logger.Debugf("Merged configuration:\n%s", string(data))
		}
	}

	return cfg, nil
}

// LoadFromBytes parses configuration data in the given format, validates it
// against the schema and applies defaults.
func LoadFromBytes(data []byte, format Format) (*Config, error) {
	cfg, err := parse(data, format, "", projectLayer)
	if err != nil {
		return nil, err
	}
	return finalize(cfg, "")
}

// FindConfigFile searches for a configuration file with the following precedence:
// 1. startDir up to the filesystem root, trying each of ConfigNames
// 2. The global configuration file in the XDG config directory
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range ConfigNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if globalPath := paths.GlobalConfigFile(); globalPath != "" {
		if info, err := os.Stat(globalPath); err == nil && !info.IsDir() {
			return globalPath, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// loadRaw reads, expands, schema-validates and decodes one file without
// applying defaults.
func loadRaw(path string, l layer) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return parse(data, format, path, l)
}

func parse(data []byte, format Format, path string, l layer) (*Config, error) {
	expanded := expandEnvVars(string(data))

	doc, err := decodeDocument([]byte(expanded), format)
	if err != nil {
		wrapped := errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse "+string(format)+" configuration")
		if path != "" {
			wrapped = wrapped.WithDetail("path", path)
		}
		return nil, wrapped
	}

	if err := validateDocument(doc, path, l); err != nil {
		return nil, err
	}

	cfg, err := decodeConfig(doc)
	if err != nil {
		wrapped := errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode configuration")
		if path != "" {
			wrapped = wrapped.WithDetail("path", path)
		}
		return nil, wrapped
	}
	return cfg, nil
}

func finalize(cfg *Config, path string) (*Config, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		if path != "" {
			if navErr, ok := errors.As(err); ok {
				return nil, navErr.WithDetail("path", path)
			}
		}
		return nil, err
	}
	return cfg, nil
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
