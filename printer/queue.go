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

import (
	"iter"

	"github.com/bufbuild/docfmt/dom"
)

// queue is a cursor over a stack of borrowed element slices.
//
// The top slice of the stack is the one being consumed; nextIndex points at
// the next element within it. Consuming the last element of the top slice
// pops the whole slice and resets the cursor. Slices on the stack are never
// empty (empty slices are dropped at push time), which keeps two invariants
// cheap: "is the queue exhausted" is a frame-count check, and nextIndex is
// always in bounds for the top slice.
type queue[S stack[[]dom.Element]] struct {
	frames    S
	nextIndex int
}

// pop removes and returns the next element.
func (q *queue[S]) pop() (dom.Element, bool) {
	topSlice, ok := q.frames.top()
	if !ok {
		return nil, false
	}
	element := topSlice[q.nextIndex]
	if q.nextIndex+1 == len(topSlice) {
		q.frames.pop()
		q.nextIndex = 0
	} else {
		q.nextIndex++
	}
	return element, true
}

// peekRaw returns the next element without consuming it and without
// resolving interned references.
func (q *queue[S]) peekRaw() (dom.Element, bool) {
	topSlice, ok := q.frames.top()
	if !ok {
		return nil, false
	}
	return topSlice[q.nextIndex], true
}

// peek is like [queue.peekRaw], but if the next element is an interned
// reference it resolves to the first real element inside it, recursively.
func (q *queue[S]) peek() (dom.Element, bool) {
	element, ok := q.peekRaw()
	for ok {
		interned, isInterned := element.(*dom.Interned)
		if !isInterned {
			break
		}
		element, ok = interned.First()
	}
	return element, ok
}

// pushFront queues a single element to be consumed before everything
// currently queued.
func (q *queue[S]) pushFront(element dom.Element) {
	q.extendFront([]dom.Element{element})
}

// extendFront queues a slice of elements to be consumed before everything
// currently queued. The top slice is split at the cursor and its remainder
// re-pushed above the stack, so the top of the stack stays the next thing to
// pop even when content is spliced in mid-slice. Empty slices are dropped.
func (q *queue[S]) extendFront(elements []dom.Element) {
	if len(elements) == 0 {
		return
	}
	if topSlice, ok := q.frames.pop(); ok {
		// Non-empty by the cursor invariant.
		q.frames.push(topSlice[q.nextIndex:])
	}
	q.frames.push(elements)
	q.nextIndex = 0
}

// popFrame resets the cursor and removes the top slice wholesale, returning
// its unconsumed remainder.
func (q *queue[S]) popFrame() ([]dom.Element, bool) {
	frame, ok := q.frames.pop()
	if !ok {
		return nil, false
	}
	frame = frame[q.nextIndex:]
	q.nextIndex = 0
	return frame, true
}

// skipMatched drains elements until the matching end tag of kind closes,
// discarding everything in between.
func (q *queue[S]) skipMatched(kind dom.TagKind) error {
	for _, err := range q.iterMatched(kind) {
		if err != nil {
			return err
		}
	}
	return nil
}

// iterMatched yields every element between the current position and the
// matching end tag of kind, honoring the nesting depth of same-kind tags.
// Interned references are expanded in place and never yielded themselves.
// The matching end tag is consumed but not yielded.
//
// The sequence is lazy, single-pass, and not restartable: consuming it
// advances the queue exactly as direct pops would. If the queue runs out
// before the region closes, the final pair yielded is a nil element and an
// error wrapping [ErrMissingEndTag].
func (q *queue[S]) iterMatched(kind dom.TagKind) iter.Seq2[dom.Element, error] {
	return func(yield func(dom.Element, error) bool) {
		depth := 1
		for {
			element, ok := q.pop()
			for ok {
				interned, isInterned := element.(*dom.Interned)
				if !isInterned {
					break
				}
				q.extendFront(interned.Elements())
				element, ok = q.pop()
			}
			if !ok {
				yield(nil, missingEndTag(kind))
				return
			}
			if tag, isTag := element.(dom.Tag); isTag && tag.Kind() == kind {
				if tag.IsStart() {
					depth++
				} else {
					depth--
					if depth == 0 {
						return
					}
				}
			}
			if !yield(element, nil) {
				return
			}
		}
	}
}

// printQueue is the authoritative, consuming cursor driving final output. It
// is the single source of truth for what remains to be printed; only the
// print loop pops from it, and measurement reads it through a snapshot.
type printQueue struct {
	queue[*sliceStack[[]dom.Element]]
}

// newPrintQueue returns a queue over the root slice of a document. An empty
// root yields a queue that is exhausted immediately.
func newPrintQueue(root []dom.Element) printQueue {
	frames := new(sliceStack[[]dom.Element])
	if len(root) > 0 {
		frames.push(root)
	}
	return printQueue{queue[*sliceStack[[]dom.Element]]{frames: frames}}
}

// isEmpty reports whether every element has been consumed.
func (q *printQueue) isEmpty() bool {
	return q.frames.len() == 0
}

// fitsQueue is a speculative cursor used to measure whether upcoming content
// fits on the current line. It satisfies the same contract as [printQueue],
// so the identical skip and iterate logic runs against it, but it is built as
// a [layeredStack] view over the print queue's frames at its current cursor:
// measuring never mutates the print queue under any circumstance.
type fitsQueue struct {
	queue[*layeredStack[[]dom.Element]]
}

// newFitsQueue returns a queue layered over print's current position.
//
// saved, if non-nil, donates overlay storage; pass the slice returned by a
// previous queue's [fitsQueue.finish] to avoid re-allocating it for every
// measurement.
func newFitsQueue(print *printQueue, saved [][]dom.Element) fitsQueue {
	frames := newLayeredStack(print.frames.values, saved)
	return fitsQueue{queue[*layeredStack[[]dom.Element]]{
		frames:    frames,
		nextIndex: print.nextIndex,
	}}
}

// finish disassembles the queue once a measurement is done, salvaging the
// overlay frames for the next one.
func (q *fitsQueue) finish() [][]dom.Element {
	return q.frames.finish()
}
