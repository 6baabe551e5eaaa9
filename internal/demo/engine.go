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

package demo

import (
	"sync"

	"github.com/study-game-engines/echo/object"
	"github.com/study-game-engines/echo/signal"
	"github.com/study-game-engines/echo/variant"
)

// Engine is the process-wide engine singleton.
type Engine struct {
	object.Base

	rootPath     string
	frameCount   int64
	frameStarted signal.Signal
}

var (
	engineOnce sync.Once
	engine     *Engine
)

// EngineInstance returns the engine singleton.
func EngineInstance() *Engine {
	engineOnce.Do(func() {
		engine = &Engine{}
		engine.SetName("Engine")
	})
	return engine
}

func (e *Engine) FrameCount() int64 { return e.frameCount }
func (e *Engine) RootPath() string { return e.rootPath }
func (e *Engine) SetRootPath(p string) { e.rootPath = p }

// Tick advances one frame, emits FrameStarted with the new count and
// returns it.
func (e *Engine) Tick() int64 {
	e.frameCount++
	e.frameStarted.Emit(variant.NewInt(e.frameCount))
	return e.frameCount
}

func (e *Engine) FrameStarted() *signal.Signal { return &e.frameStarted }

// BuildSettings holds the iOS build options edited in the build panel.
type BuildSettings struct {
	object.Base

	appName    string
	identifier string
	version    string
	icon       variant.Path
	hiddenBar  bool

	portrait           bool
	portraitUpsideDown bool
	landscapeLeft      bool
	landscapeRight     bool
}

var (
	settingsOnce sync.Once
	settings     *BuildSettings
)

// Settings returns the build settings singleton.
func Settings() *BuildSettings {
	settingsOnce.Do(func() {
		settings = &BuildSettings{appName: "Echo", version: "1.0", portrait: true}
	})
	return settings
}

func (s *BuildSettings) AppName() string { return s.appName }
func (s *BuildSettings) SetAppName(n string) { s.appName = n }
func (s *BuildSettings) Identifier() string { return s.identifier }
func (s *BuildSettings) SetIdentifier(id string) { s.identifier = id }
func (s *BuildSettings) Version() string { return s.version }
func (s *BuildSettings) SetVersion(v string) { s.version = v }
func (s *BuildSettings) Icon() variant.Path { return s.icon }
func (s *BuildSettings) SetIcon(p variant.Path) { s.icon = p }
func (s *BuildSettings) HiddenStatusBar() bool { return s.hiddenBar }
func (s *BuildSettings) SetHiddenStatusBar(b bool) { s.hiddenBar = b }

func (s *BuildSettings) Portrait() bool { return s.portrait }
func (s *BuildSettings) SetPortrait(b bool) { s.portrait = b }
func (s *BuildSettings) PortraitUpsideDown() bool { return s.portraitUpsideDown }
func (s *BuildSettings) SetPortraitUpsideDown(b bool) { s.portraitUpsideDown = b }
func (s *BuildSettings) LandscapeLeft() bool { return s.landscapeLeft }
func (s *BuildSettings) SetLandscapeLeft(b bool) { s.landscapeLeft = b }
func (s *BuildSettings) LandscapeRight() bool { return s.landscapeRight }
func (s *BuildSettings) SetLandscapeRight(b bool) { s.landscapeRight = b }
