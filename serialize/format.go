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

package serialize

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/study-game-engines/echo/apis"
)

// Marshal encodes obj and renders it in opts.Format.
func Marshal(reg apis.Registry, obj apis.Object, opts Options) ([]byte, error) {
	d, err := Encode(reg, obj, opts)
	if err != nil {
		return nil, err
	}
	return d.Bytes(opts.Format)
}

// Unmarshal parses data in format and decodes the object it describes.
func Unmarshal(reg apis.Registry, data []byte, format string) (apis.Object, error) {
	d, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	return Decode(reg, d)
}

// MarshalYAML is Marshal with the YAML format.
func MarshalYAML(reg apis.Registry, obj apis.Object, opts Options) ([]byte, error) {
	opts.Format = "yaml"
	return Marshal(reg, obj, opts)
}

// UnmarshalYAML is Unmarshal with the YAML format.
func UnmarshalYAML(reg apis.Registry, data []byte) (apis.Object, error) {
	return Unmarshal(reg, data, "yaml")
}

// MarshalTOML is Marshal with the TOML format.
func MarshalTOML(reg apis.Registry, obj apis.Object, opts Options) ([]byte, error) {
	opts.Format = "toml"
	return Marshal(reg, obj, opts)
}

// UnmarshalTOML is Unmarshal with the TOML format.
func UnmarshalTOML(reg apis.Registry, data []byte) (apis.Object, error) {
	return Unmarshal(reg, data, "toml")
}

// Bytes renders d in format; an empty format means YAML.
func (d *Document) Bytes(format string) ([]byte, error) {
	switch normalize(format) {
	case "yaml":
		return yaml.Marshal(d)
	case "toml":
		return toml.Marshal(d.table())
	}
	return nil, fmt.Errorf("%w: %q", ErrFormat, format)
}

// Parse reads a document rendered by Bytes.
func Parse(data []byte, format string) (*Document, error) {
	switch normalize(format) {
	case "yaml":
		d := new(Document)
		if err := yaml.Unmarshal(data, d); err != nil {
			return nil, err
		}
		return d, nil
	case "toml":
		var t map[string]any
		if err := toml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return fromTable(t)
	}
	return nil, fmt.Errorf("%w: %q", ErrFormat, format)
}

func normalize(format string) string {
	switch f := strings.ToLower(strings.TrimPrefix(format, ".")); f {
	case "", "yaml", "yml":
		return "yaml"
	default:
		return f
	}
}
