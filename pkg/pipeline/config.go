package pipeline

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/genogrid/pkg/errors"
)

// LoadConfig reads Options from a TOML (.toml) or YAML (.yaml, .yml) file.
// Unknown keys are rejected. The result is not validated; call
// ValidateAndSetDefaults after applying any overrides.
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Options{}, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported config format %q (must be .toml, .yaml or .yml)", ext)
	}
}

// ParseTOML decodes Options from TOML.
func ParseTOML(data []byte) (Options, error) {
	var opts Options
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return opts, nil
}

// ParseYAML decodes Options from YAML.
func ParseYAML(data []byte) (Options, error) {
	var opts Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse yaml config")
	}
	return opts, nil
}
