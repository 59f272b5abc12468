package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk layout of a JSON or YAML config file.
type FileConfig struct {
	App struct {
		Version string `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Branding struct {
		RootDir        string   `json:"root_dir" yaml:"root_dir"`
		Targets        []string `json:"targets" yaml:"targets"`
		PasskeyTimeout Duration `json:"passkey_timeout" yaml:"passkey_timeout"`
	} `json:"branding,omitempty" yaml:"branding,omitempty"`
}

// parseFile reads a config file, choosing the decoder by extension:
// .yaml/.yml for YAML, .json or no extension for JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg FileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	case ".json", "":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}

	return &StructuredConfig{
		App: App{
			Version: fileCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
		},
		Branding: Branding{
			RootDir:        fileCfg.Branding.RootDir,
			Targets:        fileCfg.Branding.Targets,
			PasskeyTimeout: time.Duration(fileCfg.Branding.PasskeyTimeout),
		},
	}, nil
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
