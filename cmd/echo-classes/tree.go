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

package main

import (
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/study-game-engines/echo/apis"
)

type classNode struct {
	Name       string         `yaml:"name"`
	Module     string         `yaml:"module,omitempty"`
	Virtual    bool           `yaml:"virtual,omitempty"`
	Singleton  bool           `yaml:"singleton,omitempty"`
	Properties []propertyNode `yaml:"properties,omitempty"`
	Methods    []string       `yaml:"methods,omitempty"`
	Signals    []string       `yaml:"signals,omitempty"`
	Children   []*classNode   `yaml:"children,omitempty"`
}

type propertyNode struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	ReadOnly bool     `yaml:"readOnly,omitempty"`
	Hints    []string `yaml:"hints,omitempty"`
}

// dumpTree renders every registered class under its parent. Classes whose
// parent is missing are printed as roots.
func dumpTree(reg apis.Registry) ([]byte, error) {
	var roots []*classNode
	for _, name := range reg.Classes() {
		parent, ok := reg.ParentClass(name)
		if !ok || reg.ClassInfo(parent) == nil {
			roots = append(roots, classTree(reg, name, map[string]bool{}))
		}
	}
	return yaml.Marshal(roots)
}

func classTree(reg apis.Registry, name string, seen map[string]bool) *classNode {
	seen[name] = true
	ci := reg.ClassInfo(name)
	n := &classNode{
		Name:      name,
		Module:    ci.Module,
		Virtual:   ci.Virtual,
		Singleton: ci.Singleton,
		Methods:   slices.Clone(ci.Methods.Keys),
		Signals:   slices.Clone(ci.Signals.Keys),
	}
	for _, pi := range reg.Properties(name, nil, apis.Static, false) {
		pn := propertyNode{Name: pi.Name, Type: pi.Type.String(), ReadOnly: pi.ReadOnly()}
		for _, h := range pi.Hints {
			pn.Hints = append(pn.Hints, h.Type.String()+"="+h.Value)
		}
		n.Properties = append(n.Properties, pn)
	}
	for _, child := range reg.ChildClasses(name, false) {
		if !seen[child] {
			n.Children = append(n.Children, classTree(reg, child, seen))
		}
	}
	return n
}
