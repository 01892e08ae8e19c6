/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package events holds the pointer callbacks of the canvas in named slots.
// Hosts translate their native input into Events and Dispatch them; tools
// attach and detach handlers as their drag state changes.
package events

import "fmt"

// Kind names a pointer slot.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	Leave
)

var kindNames = [...]string{"down", "move", "up", "leave"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every slot in dispatch order.
func Kinds() []Kind { return []Kind{Down, Move, Up, Leave} }

// Event is a pointer notification in device coordinates.
type Event struct {
	Kind Kind
	X, Y int
}

type Handler func(Event)

// Source is the slot registry. It is not safe for concurrent use; hosts
// dispatch from their single UI goroutine.
type Source struct {
	slots  map[Kind]Handler
	paused map[Kind]Handler
}

func NewSource() *Source {
	return &Source{slots: map[Kind]Handler{}}
}

// Attach installs h in slot k, replacing any previous handler.
func (s *Source) Attach(k Kind, h Handler) { s.slots[k] = h }

func (s *Source) Detach(kinds ...Kind) {
	for _, k := range kinds {
		delete(s.slots, k)
	}
}

// DetachAll clears every slot, including handlers put aside by Pause.
func (s *Source) DetachAll() {
	clear(s.slots)
	s.paused = nil
}

func (s *Source) Attached(k Kind) bool {
	_, ok := s.slots[k]
	return ok
}

// Slots lists the attached kinds in dispatch order.
func (s *Source) Slots() []Kind {
	var out []Kind
	for _, k := range Kinds() {
		if s.Attached(k) {
			out = append(out, k)
		}
	}
	return out
}

// Len is the number of attached slots.
func (s *Source) Len() int { return len(s.slots) }

func (s *Source) Paused() bool { return s.paused != nil }

// Pause puts every attached handler aside until Resume. Pausing twice keeps
// the first set.
func (s *Source) Pause() {
	if s.paused != nil {
		return
	}
	s.paused = s.slots
	s.slots = map[Kind]Handler{}
}

// Resume drops whatever is attached and restores the paused handlers.
func (s *Source) Resume() {
	if s.paused == nil {
		return
	}
	s.slots = s.paused
	s.paused = nil
}

// Dispatch runs the handler in the event's slot and reports whether one ran.
func (s *Source) Dispatch(e Event) bool {
	h, ok := s.slots[e.Kind]
	if !ok {
		return false
	}
	h(e)
	return true
}
