// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dom

import (
	"fmt"

	"github.com/bufbuild/docfmt/internal/ext/slicesx"
)

// Interned is a shared sub-sequence of elements. Multiple positions in a
// document may reference the same Interned value; the printer treats each
// reference as if the sequence's contents were inlined there.
//
// The first element of an interned sequence may itself be interned, so
// resolving "what is the next real element" is a loop, not a single
// dereference. That loop lives at the read sites in the printer, keeping the
// resolution cost visible.
type Interned struct {
	elements []Element
}

func (*Interned) element() {}

// Elements returns the shared sequence. Callers must not mutate it.
func (i *Interned) Elements() []Element {
	return i.elements
}

// First returns the first element of the sequence, without resolving nested
// interned references.
func (i *Interned) First() (Element, bool) {
	return slicesx.Get(i.elements, 0)
}

// String implements [fmt.Stringer].
func (i *Interned) String() string {
	return fmt.Sprintf("Interned(%d)", len(i.elements))
}

// Pool owns interned sequences. It is populated by the lowering stage while
// a document is constructed and is read-only for the lifetime of a print.
type Pool struct {
	sequences []*Interned
}

// Intern records elements as a shared sequence and returns the reference to
// splice into documents.
func (p *Pool) Intern(elements ...Element) *Interned {
	interned := &Interned{elements: elements}
	p.sequences = append(p.sequences, interned)
	return interned
}

// Len returns the number of sequences interned so far.
func (p *Pool) Len() int {
	return len(p.sequences)
}
