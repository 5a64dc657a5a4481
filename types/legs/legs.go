/*
 *	Copyright 2025 The TensorNet Authors
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package legs defines Leg, the symbolic identity of a tensor axis, and the
// Registry that maps leg names to identities and back.
//
// Tensor-network code routinely shuffles axis order across operations, so
// axes are addressed by a stable identity (a "leg") rather than by position.
// A Leg is a small value type -- an integer id -- cheap to copy, usable as a
// map key, with value equality and a total ordering.
//
// Legs are created by name through a Registry: the first request for a name
// allocates the next id and records the name<->id mapping; later requests for
// the same name return the identical Leg. A package-level Default registry
// (in the manner of flag.CommandLine) backs the convenience function New and
// the conventional leg names defined in names.go.
//
// Example:
//
//	up := legs.New("Up")        // Same as legs.Up, from the conventional table.
//	k := legs.New("Krylov")     // Allocates a fresh identity on first use.
//	k == legs.New("Krylov")     // true: same name, same identity.
package legs

import (
	"fmt"
	"sync"

	"k8s.io/klog/v2"
)

// ID is the integer identity backing a Leg.
type ID int32

// Leg identifies one axis of a tensor. Two legs are the same axis iff their
// ids are equal, independently of how they were created.
//
// The zero value has id 0 and therefore aliases the first leg allocated by a
// registry. Create legs through a registry or FromID rather than with a
// literal.
type Leg struct {
	id ID
}

// FromID creates a Leg directly from its id, without consulting or changing
// any registry. It is meant for programmatically synthesized axes that need
// no display name.
//
// No uniqueness is enforced against named legs: a raw id may collide with an
// id allocated by a registry, and the two compare equal. Callers that mix
// raw and named legs are responsible for avoiding collisions they care about.
func FromID(id ID) Leg {
	return Leg{id: id}
}

// ID returns the integer identity of the leg.
func (l Leg) ID() ID { return l.id }

// Compare returns -1, 0 or +1 ordering legs by id. It makes Leg usable with
// slices.SortFunc and as an ordered key.
func (l Leg) Compare(other Leg) int {
	switch {
	case l.id < other.id:
		return -1
	case l.id > other.id:
		return 1
	}
	return 0
}

// String returns the name registered for the leg in the Default registry, or
// a synthetic "UnnamedLeg<id>" label if there is none. It never fails.
func (l Leg) String() string {
	return Default.NameOf(l)
}

// Registry is a bijective mapping between leg names and ids, with on-demand
// allocation from a single monotonic counter. It is safe for concurrent use.
//
// Identities are never reclaimed: the registry only grows for the lifetime of
// its owner.
type Registry struct {
	mu       sync.Mutex
	next     ID
	nameToID map[string]ID
	idToName map[ID]string
}

// NewRegistry returns an empty registry whose first allocated leg will have
// id 0.
func NewRegistry() *Registry {
	return &Registry{
		nameToID: make(map[string]ID),
		idToName: make(map[ID]string),
	}
}

// Leg returns the leg registered under name, allocating a fresh identity if
// the name was never seen before. It is idempotent: the same name always
// yields the identical leg. It never fails.
func (r *Registry) Leg(name string) Leg {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, found := r.nameToID[name]; found {
		return Leg{id: id}
	}
	id := r.next
	r.next++
	r.nameToID[name] = id
	r.idToName[id] = name
	klog.V(2).Infof("legs: allocated id %d for leg %q", id, name)
	return Leg{id: id}
}

// NameOf returns the name registered for the leg, or a synthetic
// "UnnamedLeg<id>" label if the id was never associated with a name (e.g.,
// legs created with FromID). It never fails.
func (r *Registry) NameOf(l Leg) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if name, found := r.idToName[l.id]; found {
		return name
	}
	return fmt.Sprintf("UnnamedLeg%d", l.id)
}

// IsNamed returns whether the leg's id has a registered name.
func (r *Registry) IsNamed(l Leg) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, found := r.idToName[l.id]
	return found
}

// Len returns the number of names registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.nameToID)
}

// Default is the registry backing New, Leg.String and the conventional leg
// names in names.go. Libraries that want an isolated identity space should
// instead carry their own *Registry.
var Default = NewRegistry()

// New returns the leg registered under name in the Default registry,
// allocating it on first use. See Registry.Leg.
func New(name string) Leg {
	return Default.Leg(name)
}
