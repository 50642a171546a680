package values

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/tarantool/populate/cli/util"
)

// SettingsSection is the settings file section with template values.
const SettingsSection = "global"

// DefaultSettingsFiles are searched in the project root in this order.
var DefaultSettingsFiles = []string{"populate.ini", "populate.yaml", "populate.yml"}

// Settings holds values from the settings file.
//
// populate.ini format:
//
//	[global]
//	package_name = my-package
//	package_version = 0.1.0
//	short_description = My package does things.
//
// populate.yaml format:
//
//	global:
//	  package_name: my-package
//	  ...
//
// Keys other than the required ones become scalar template values as is.
type Settings struct {
	PackageName      string                 `mapstructure:"package_name"`
	PackageVersion   string                 `mapstructure:"package_version"`
	ShortDescription string                 `mapstructure:"short_description"`
	Extra            map[string]interface{} `mapstructure:",remain"`
}

// Required returns the required settings in the template values order.
func (s Settings) Required() [][2]string {
	return [][2]string{
		{"package_name", s.PackageName},
		{"package_version", s.PackageVersion},
		{"short_description", s.ShortDescription},
	}
}

// ExtraKeys returns additional settings keys in sorted order.
func (s Settings) ExtraKeys() []string {
	keys := make([]string, 0, len(s.Extra))
	for key := range s.Extra {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// FindSettingsFile returns the first of DefaultSettingsFiles existing in dir.
func FindSettingsFile(dir string) (string, error) {
	for _, name := range DefaultSettingsFiles {
		path := filepath.Join(dir, name)
		if util.IsRegularFile(path) {
			return path, nil
		}
	}
	return "", util.NewConfigError("settings file is not found in %q, expected one of: %v",
		dir, DefaultSettingsFiles)
}

// readSection returns raw key-value pairs of the settings section.
func readSection(path string) (map[string]string, error) {
	switch ext := filepath.Ext(path); ext {
	case ".ini":
		cfg, err := ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", path, err)
		}
		section, err := cfg.GetSection(SettingsSection)
		if err != nil {
			return nil, util.NewConfigError("section [%s] is not found in %q",
				SettingsSection, filepath.Base(path))
		}
		return section.KeysHash(), nil
	case ".yaml", ".yml":
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}
		var raw map[string]map[string]string
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", path, err)
		}
		section, found := raw[SettingsSection]
		if !found {
			return nil, util.NewConfigError("section %q is not found in %q",
				SettingsSection, filepath.Base(path))
		}
		return section, nil
	default:
		return nil, util.NewConfigError("unsupported settings file format %q: %s",
			ext, filepath.Base(path))
	}
}

// LoadSettings loads settings from an ini or yaml file. Missing or empty
// required keys produce a ConfigError listing all of them.
func LoadSettings(path string) (Settings, error) {
	var settings Settings
	section, err := readSection(path)
	if err != nil {
		return settings, err
	}

	if err := mapstructure.Decode(section, &settings); err != nil {
		return settings, fmt.Errorf("failed to decode settings: %w", err)
	}

	var emptyKeys []string
	for _, kv := range settings.Required() {
		if kv[1] == "" {
			emptyKeys = append(emptyKeys, kv[0])
		}
	}
	if len(emptyKeys) > 0 {
		return settings, util.NewMissingKeysError(filepath.Base(path), emptyKeys)
	}

	return settings, nil
}
