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
	"github.com/study-game-engines/echo/apis"
)

const (
	// DefaultMaxDepth represents the default for MaxDepth.
	// Real class hierarchies are a handful of levels deep; 64 leaves
	// plenty of room while still terminating on a runaway chain.
	DefaultMaxDepth = 64
	// DefaultDetectCycles represents the default for DetectCycles.
	DefaultDetectCycles = true
	// DefaultReflectFallback represents the default for ReflectFallback.
	// When true, unregistered objects resolve to their bare Go type name.
	DefaultReflectFallback = true
	// DefaultScriptBridge represents the default for ScriptBridge.
	DefaultScriptBridge = true
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure limits are valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxDepth:        DefaultMaxDepth,
		DetectCycles:    DefaultDetectCycles,
		ReflectFallback: DefaultReflectFallback,
		ScriptBridge:    DefaultScriptBridge,
		MaxUnwrap:       DefaultMaxUnwrap,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxDepth sets the MaxDepth option.
// A negative value resets to the default; zero means unbounded.
func WithMaxDepth(depth int) Option {
	return func(c *apis.Config) {
		if depth < 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = depth
	}
}

// WithDetectCycles sets the DetectCycles option.
func WithDetectCycles(detect bool) Option {
	return func(c *apis.Config) {
		c.DetectCycles = detect
	}
}

// WithReflectFallback sets the ReflectFallback option.
func WithReflectFallback(fallback bool) Option {
	return func(c *apis.Config) {
		c.ReflectFallback = fallback
	}
}

// WithScriptBridge sets the ScriptBridge option.
func WithScriptBridge(bridge bool) Option {
	return func(c *apis.Config) {
		c.ScriptBridge = bridge
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}
