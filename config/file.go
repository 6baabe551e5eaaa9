/*
   Copyright 2025 The Echo Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/study-game-engines/echo/apis"
)

// File is the on-disk configuration. Unset registry knobs keep their
// defaults, so a file only needs to name what it changes.
type File struct {
	Registry  RegistryFile  `yaml:"registry" toml:"registry"`
	Modules   ModulesFile   `yaml:"modules" toml:"modules"`
	Serialize SerializeFile `yaml:"serialize" toml:"serialize"`
}

// RegistryFile mirrors apis.Config.
type RegistryFile struct {
	MaxDepth        *int  `yaml:"maxDepth,omitempty" toml:"maxDepth,omitempty"`
	DetectCycles    *bool `yaml:"detectCycles,omitempty" toml:"detectCycles,omitempty"`
	ReflectFallback *bool `yaml:"reflectFallback,omitempty" toml:"reflectFallback,omitempty"`
	ScriptBridge    *bool `yaml:"scriptBridge,omitempty" toml:"scriptBridge,omitempty"`
	MaxUnwrap       *int  `yaml:"maxUnwrap,omitempty" toml:"maxUnwrap,omitempty"`
}

// ModulesFile enables or disables registering modules.
type ModulesFile struct {
	Disabled []string `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
}

// SerializeFile holds persistence defaults.
type SerializeFile struct {
	// Format is "yaml" or "toml".
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`
	// OnlyOverridden skips properties equal to the class default.
	OnlyOverridden bool `yaml:"onlyOverridden,omitempty" toml:"onlyOverridden,omitempty"`
}

// NewFile returns a File with default serialization settings.
func NewFile() *File {
	return &File{Serialize: SerializeFile{Format: "yaml"}}
}

// Load reads a configuration file.
func Load(path string) (*File, error) {
	f := NewFile()
	if err := f.LoadFile(path); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadFile loads configuration from a file (TOML or YAML based on extension)
// and merges it into f.
func (f *File) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var loaded File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing TOML config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	default:
		// Try YAML first, then TOML
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			if err := toml.Unmarshal(data, &loaded); err != nil {
				return fmt.Errorf("unable to parse config %s as YAML or TOML", path)
			}
		}
	}

	f.merge(&loaded)
	return nil
}

func (f *File) merge(loaded *File) {
	r := &loaded.Registry
	if r.MaxDepth != nil {
		f.Registry.MaxDepth = r.MaxDepth
	}
	if r.DetectCycles != nil {
		f.Registry.DetectCycles = r.DetectCycles
	}
	if r.ReflectFallback != nil {
		f.Registry.ReflectFallback = r.ReflectFallback
	}
	if r.ScriptBridge != nil {
		f.Registry.ScriptBridge = r.ScriptBridge
	}
	if r.MaxUnwrap != nil {
		f.Registry.MaxUnwrap = r.MaxUnwrap
	}
	for _, m := range loaded.Modules.Disabled {
		if !slices.Contains(f.Modules.Disabled, m) {
			f.Modules.Disabled = append(f.Modules.Disabled, m)
		}
	}
	if loaded.Serialize.Format != "" {
		f.Serialize.Format = strings.ToLower(loaded.Serialize.Format)
	}
	if loaded.Serialize.OnlyOverridden {
		f.Serialize.OnlyOverridden = true
	}
}

// Options converts the registry section into functional options.
func (f *File) Options() []Option {
	var opts []Option
	r := f.Registry
	if r.MaxDepth != nil {
		opts = append(opts, WithMaxDepth(*r.MaxDepth))
	}
	if r.DetectCycles != nil {
		opts = append(opts, WithDetectCycles(*r.DetectCycles))
	}
	if r.ReflectFallback != nil {
		opts = append(opts, WithReflectFallback(*r.ReflectFallback))
	}
	if r.ScriptBridge != nil {
		opts = append(opts, WithScriptBridge(*r.ScriptBridge))
	}
	if r.MaxUnwrap != nil {
		opts = append(opts, WithMaxUnwrap(*r.MaxUnwrap))
	}
	return opts
}

// Config returns the effective registry configuration.
func (f *File) Config() apis.Config {
	return NewConfig(f.Options()...)
}

// ModuleEnabled reports whether classes of module may be registered.
func (f *File) ModuleEnabled(module string) bool {
	return !slices.Contains(f.Modules.Disabled, module)
}
