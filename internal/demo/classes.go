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
	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/builder"
	"github.com/study-game-engines/echo/object"
	"github.com/study-game-engines/echo/variant"
)

// Module names used by the demo classes.
const (
	ModuleScene = "scene"
	ModuleBuild = "build"
)

const orientation = "Device Orientation"

// Describers returns the demo classes, deliberately not parent-first.
func Describers() []builder.Describer {
	return []builder.Describer{
		builder.Class[Circle]("Circle").
			Parent("Shape").
			Module(ModuleScene).
			Constructor(NewCircle).
			Accessors("Radius", variant.Real, (*Circle).Radius, (*Circle).SetRadius).
			Hint("Radius", apis.HintRange, "0,100,0.5"),

		builder.Class[Capsule]("Capsule").
			Parent("Shape").
			Module(ModuleScene).
			Constructor(NewCapsule).
			Accessors("Radius", variant.Real, (*Capsule).Radius, (*Capsule).SetRadius).
			Accessors("Height", variant.Real, (*Capsule).Height, (*Capsule).SetHeight).
			Hint("Height", apis.HintRange, "0,1000"),

		builder.Class[Shape]("Shape").
			Parent("Node").
			Module(ModuleScene).
			Virtual().
			Accessors("Color", variant.Color, (*Shape).Color, (*Shape).SetColor).
			Hint("Color", apis.HintCategory, "Appearance"),

		builder.Class[Node]("Node").
			Parent(object.ClassName).
			Module(ModuleScene).
			Constructor(NewNode).
			Accessors("Position", variant.Vector3, (*Node).Position, (*Node).SetPosition).
			Accessors("Visible", variant.Bool, (*Node).Visible, (*Node).SetVisible).
			Method("addChild", (*Node).AddChild).
			Method("getChildCount", (*Node).ChildCount).
			Signal("visibilityChanged", (*Node).VisibilityChanged).
			InheritedHint("Name", apis.HintTooltip, "Unique within the parent node"),

		builder.Singleton("Engine", EngineInstance).
			Parent(object.ClassName).
			Accessors("FrameCount", variant.Int, (*Engine).FrameCount, nil).
			Accessors("RootPath", variant.String, (*Engine).RootPath, (*Engine).SetRootPath).
			Method("tick", (*Engine).Tick).
			Signal("frameStarted", (*Engine).FrameStarted),

		builder.Singleton("iOSBuildSettings", Settings).
			Parent(object.ClassName).
			Module(ModuleBuild).
			Accessors("AppName", variant.String, (*BuildSettings).AppName, (*BuildSettings).SetAppName).
			Accessors("Identifier", variant.String, (*BuildSettings).Identifier, (*BuildSettings).SetIdentifier).
			Accessors("Version", variant.String, (*BuildSettings).Version, (*BuildSettings).SetVersion).
			Accessors("Icon", variant.ResourcePath, (*BuildSettings).Icon, (*BuildSettings).SetIcon).
			Accessors("HiddenStatusBar", variant.Bool, (*BuildSettings).HiddenStatusBar, (*BuildSettings).SetHiddenStatusBar).
			Accessors("Portrait", variant.Bool, (*BuildSettings).Portrait, (*BuildSettings).SetPortrait).
			Accessors("PortraitUpsideDown", variant.Bool, (*BuildSettings).PortraitUpsideDown, (*BuildSettings).SetPortraitUpsideDown).
			Accessors("LandscapeLeft", variant.Bool, (*BuildSettings).LandscapeLeft, (*BuildSettings).SetLandscapeLeft).
			Accessors("LandscapeRight", variant.Bool, (*BuildSettings).LandscapeRight, (*BuildSettings).SetLandscapeRight).
			Hint("Icon", apis.HintResourceType, "*.png").
			Hint("Portrait", apis.HintCategory, orientation).
			Hint("PortraitUpsideDown", apis.HintCategory, orientation).
			Hint("LandscapeLeft", apis.HintCategory, orientation).
			Hint("LandscapeRight", apis.HintCategory, orientation),

		object.Describe(),
	}
}

// Plan returns a registration plan for the demo classes.
func Plan() *builder.Plan {
	return builder.NewPlan(Describers()...)
}
