/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package resize

import "strings"

// Handle is a bitmask of the compass edges a resize handle controls.
type Handle uint8

const (
	North Handle = 1 << iota
	South
	East
	West

	SouthEast = South | East
	SouthWest = South | West
)

func (h Handle) Has(e Handle) bool { return h&e == e }

// ParseHandle reads a handle identity such as "resizer-south-east" by looking
// for the edge names it contains.
func ParseHandle(id string) Handle {
	id = strings.ToLower(id)
	var h Handle
	for _, e := range []struct {
		name string
		edge Handle
	}{{"north", North}, {"south", South}, {"east", East}, {"west", West}} {
		if strings.Contains(id, e.name) {
			h |= e.edge
		}
	}
	return h
}

// Handles lists the handles the canvas exposes. The top edge has none.
func Handles() []Handle { return []Handle{East, West, South, SouthEast, SouthWest} }

func (h Handle) String() string {
	var parts []string
	for _, e := range []struct {
		name string
		edge Handle
	}{{"north", North}, {"south", South}, {"east", East}, {"west", West}} {
		if h.Has(e.edge) {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "-")
}
