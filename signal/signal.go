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

// Package signal provides the signal objects exposed by class signal
// accessors.
package signal

import (
	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/variant"
)

// Signal is a list of handlers called in connection order by Emit.
// The zero value is ready to use.
type Signal struct {
	next     uint64
	handlers []handler
}

type handler struct {
	id uint64
	fn func(args ...variant.Variant)
}

// Ensure Signal implements apis.Signal.
var _ apis.Signal = (*Signal)(nil)

// Connect registers fn and returns its handle.
func (s *Signal) Connect(fn func(args ...variant.Variant)) uint64 {
	s.next++
	s.handlers = append(s.handlers, handler{id: s.next, fn: fn})
	return s.next
}

// Disconnect removes the handler registered under id.
func (s *Signal) Disconnect(id uint64) bool {
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// DisconnectAll removes every handler.
func (s *Signal) DisconnectAll() {
	s.handlers = nil
}

// Emit calls every connected handler. Handlers connected during Emit are
// not called until the next Emit.
func (s *Signal) Emit(args ...variant.Variant) {
	hs := make([]handler, len(s.handlers))
	copy(hs, s.handlers)
	for _, h := range hs {
		h.fn(args...)
	}
}

// Len returns the number of connected handlers.
func (s *Signal) Len() int {
	return len(s.handlers)
}
