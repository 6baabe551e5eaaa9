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

package builder

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/study-game-engines/echo/apis"
)

var (
	// ErrCycle is returned when the parent relation among planned classes
	// is cyclic.
	ErrCycle = errors.New("echo(builder): cyclic parent chain")
	// ErrDuplicateClass is returned when a class name is planned twice.
	ErrDuplicateClass = errors.New("echo(builder): class declared twice")
)

// Plan gathers class descriptors in any order and registers them in a single
// deterministic pass, parents before children.
type Plan struct {
	descs   []*Descriptor
	enabled func(module string) bool
}

// NewPlan returns a plan holding ds.
func NewPlan(ds ...Describer) *Plan {
	p := &Plan{}
	p.Add(ds...)
	return p
}

// Add appends descriptors to the plan.
func (p *Plan) Add(ds ...Describer) *Plan {
	for _, d := range ds {
		if d != nil {
			p.descs = append(p.descs, d.Descriptor())
		}
	}
	return p
}

// Filter restricts registration to classes whose module is accepted by
// enabled. Classes below a skipped class are skipped too.
func (p *Plan) Filter(enabled func(module string) bool) *Plan {
	p.enabled = enabled
	return p
}

// Len returns the number of planned classes.
func (p *Plan) Len() int { return len(p.descs) }

// Order returns the descriptors parents-first. Among classes whose parent is
// already placed, or is not part of the plan, the smallest name goes first.
func (p *Plan) Order() ([]*Descriptor, error) {
	byName := make(map[string]*Descriptor, len(p.descs))
	for _, d := range p.descs {
		if _, dup := byName[d.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, d.Name)
		}
		byName[d.Name] = d
	}

	children := make(map[string][]string)
	var ready []string
	for _, d := range p.descs {
		if _, planned := byName[d.Parent]; planned && d.Parent != d.Name {
			children[d.Parent] = append(children[d.Parent], d.Name)
		} else if d.Parent != d.Name {
			ready = append(ready, d.Name)
		}
	}

	out := make([]*Descriptor, 0, len(p.descs))
	for len(ready) > 0 {
		slices.Sort(ready)
		name := ready[0]
		ready = ready[1:]
		out = append(out, byName[name])
		ready = append(ready, children[name]...)
	}

	if len(out) != len(p.descs) {
		var stuck []string
		placed := make(map[string]bool, len(out))
		for _, d := range out {
			placed[d.Name] = true
		}
		for _, d := range p.descs {
			if !placed[d.Name] {
				stuck = append(stuck, d.Name)
			}
		}
		slices.Sort(stuck)
		return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(stuck, ", "))
	}
	return out, nil
}

// Register orders the plan and registers every enabled class into reg. It
// stops at the first failing class.
func (p *Plan) Register(reg apis.Registry) error {
	order, err := p.Order()
	if err != nil {
		return err
	}
	skipped := make(map[string]bool)
	for _, d := range order {
		if skipped[d.Parent] || (p.enabled != nil && !p.enabled(d.Module)) {
			slog.Debug("builder: skipping class", "class", d.Name, "module", d.Module)
			skipped[d.Name] = true
			continue
		}
		slog.Debug("builder: registering class", "class", d.Name, "parent", d.Parent)
		if err := d.Register(reg); err != nil {
			return err
		}
	}
	return nil
}
