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

// Package object provides Base, the embeddable root of registered classes:
// a persistent instance id, a name and a rename signal.
package object

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/builder"
	"github.com/study-game-engines/echo/signal"
	"github.com/study-game-engines/echo/variant"
)

// ClassName is the name Base registers under.
const ClassName = "Object"

// ErrInvalidID is returned by SetObjectID for ids that are not UUIDs.
var ErrInvalidID = errors.New("echo(object): invalid object id")

// Base is embedded by registered types. Its zero value is ready to use; the
// id is assigned on first access.
type Base struct {
	id      uuid.UUID
	name    string
	renamed signal.Signal
}

// Ensure Base implements apis.Identifier.
var _ apis.Identifier = (*Base)(nil)

// ObjectID returns the instance id, assigning a random one if unset.
func (b *Base) ObjectID() string {
	if b.id == uuid.Nil {
		b.id = uuid.New()
	}
	return b.id.String()
}

// SetObjectID restores a persisted id. An empty id clears it, so the next
// ObjectID call assigns a fresh one.
func (b *Base) SetObjectID(id string) error {
	if id == "" {
		b.id = uuid.Nil
		return nil
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidID, id, err)
	}
	b.id = u
	return nil
}

// HasID reports whether an id has been assigned or restored.
func (b *Base) HasID() bool { return b.id != uuid.Nil }

func (b *Base) Name() string { return b.name }

// SetName renames the object and emits Renamed with the new name when it
// changes.
func (b *Base) SetName(name string) {
	if name == b.name {
		return
	}
	b.name = name
	b.renamed.Emit(variant.NewString(name))
}

// Renamed is emitted by SetName.
func (b *Base) Renamed() *signal.Signal { return &b.renamed }

// Describe returns the descriptor of the root "Object" class.
func Describe() builder.Describer {
	return builder.Class[Base](ClassName).
		Accessors("Name", variant.String, (*Base).Name, (*Base).SetName).
		Signal("renamed", (*Base).Renamed)
}
