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

package printer

import "github.com/bufbuild/docfmt/internal/ext/slicesx"

// stack is a last-in-first-out container of document fragments.
//
// Both queue flavors are generic over this interface: the print queue owns a
// plain [sliceStack], while the fits queue uses a [layeredStack] so it can
// read the print queue's frames without copying or mutating them.
type stack[T any] interface {
	// push pushes v on top of the stack.
	push(v T)
	// pop removes and returns the top of the stack, if any.
	pop() (T, bool)
	// top returns the top of the stack without removing it.
	top() (T, bool)
	// len returns the number of values on the stack.
	len() int
}

// sliceStack is a growable stack backed by a single slice.
type sliceStack[T any] struct {
	values []T
}

var _ stack[int] = (*sliceStack[int])(nil)

func (s *sliceStack[T]) push(v T) {
	s.values = append(s.values, v)
}

func (s *sliceStack[T]) pop() (T, bool) {
	v, ok := slicesx.Last(s.values)
	if ok {
		s.values = s.values[:len(s.values)-1]
	}
	return v, ok
}

func (s *sliceStack[T]) top() (T, bool) {
	return slicesx.Last(s.values)
}

func (s *sliceStack[T]) len() int {
	return len(s.values)
}

// layeredStack is a stack split into two layers: a read-only snapshot of
// another stack's storage, and a private overlay of values pushed after the
// snapshot was taken.
//
// Reads check the overlay first and fall through to the snapshot. Pushes only
// ever land on the overlay. Popping a snapshot value shrinks this stack's
// view of the snapshot; the storage underneath is never written, so any
// number of layered stacks can be created over one base for the price of a
// slice header.
type layeredStack[T any] struct {
	base   []T // Never written, only re-sliced.
	frames []T
}

var _ stack[int] = (*layeredStack[int])(nil)

// newLayeredStack returns a stack layered over base.
//
// frames, if non-nil, donates its storage to the overlay; its contents are
// discarded. Passing the slice returned by a previous stack's [finish] avoids
// re-allocating the overlay for every measurement.
func newLayeredStack[T any](base, frames []T) *layeredStack[T] {
	return &layeredStack[T]{base: base, frames: frames[:0]}
}

func (s *layeredStack[T]) push(v T) {
	s.frames = append(s.frames, v)
}

func (s *layeredStack[T]) pop() (T, bool) {
	if v, ok := slicesx.Last(s.frames); ok {
		s.frames = s.frames[:len(s.frames)-1]
		return v, true
	}
	v, ok := slicesx.Last(s.base)
	if ok {
		s.base = s.base[:len(s.base)-1]
	}
	return v, ok
}

func (s *layeredStack[T]) top() (T, bool) {
	if v, ok := slicesx.Last(s.frames); ok {
		return v, true
	}
	return slicesx.Last(s.base)
}

func (s *layeredStack[T]) len() int {
	return len(s.frames) + len(s.base)
}

// finish disassembles the stack, returning the overlay frames so a later
// layered stack can reuse their storage. The base snapshot is dropped
// untouched.
func (s *layeredStack[T]) finish() []T {
	return s.frames
}
