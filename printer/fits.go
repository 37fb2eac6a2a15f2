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
	"github.com/rivo/uniseg"

	"github.com/bufbuild/docfmt/dom"
)

// fitsPredicate is a stopping rule for a fit measurement. It is stepped with
// every element popped from the fits queue; measurement ends after the first
// element for which step reports stop. It behaves like a take-while over the
// scan, except that it takes while step reports false.
type fitsPredicate interface {
	step(element dom.Element) (stop bool, err error)
}

// allPredicate never stops: the scan runs until the fits queue is exhausted
// or the width budget is exceeded. Used to measure whether everything
// remaining fits, where no enclosing boundary exists.
type allPredicate struct{}

var _ fitsPredicate = allPredicate{}

func (allPredicate) step(dom.Element) (bool, error) {
	return false, nil
}

// singleEntryPredicate stops once one balanced pair of kind tags closes,
// measuring a single region independent of its later siblings.
//
// The predicate is strict below depth one: an end tag of kind met at depth
// zero, or any non-tag content where only a region boundary was expected, is
// reported as a malformed document rather than silently ignored. That
// strictness is what catches bad documents from the lowering stage early.
// Interned references are transparent; they never count toward depth and
// never trip the depth-zero checks.
type singleEntryPredicate struct {
	kind  dom.TagKind
	depth int
	done  bool
}

var _ fitsPredicate = (*singleEntryPredicate)(nil)

// singleEntry returns a predicate measuring one balanced region of kind.
func singleEntry(kind dom.TagKind) *singleEntryPredicate {
	return &singleEntryPredicate{kind: kind}
}

// isDone reports whether the predicate has reached its terminal state. Every
// step after that immediately stops.
func (p *singleEntryPredicate) isDone() bool {
	return p.done
}

func (p *singleEntryPredicate) step(element dom.Element) (bool, error) {
	if p.done {
		return true, nil
	}
	switch element := element.(type) {
	case *dom.Interned:
		return false, nil
	case dom.Tag:
		if element.Kind() != p.kind {
			break
		}
		if element.IsStart() {
			p.depth++
			return false, nil
		}
		if p.depth == 0 {
			return false, invalidEndTag(p.kind, element)
		}
		p.depth--
		if p.depth == 0 {
			p.done = true
			return true, nil
		}
		return false, nil
	}
	if p.depth == 0 {
		return false, invalidStartTag(p.kind, element)
	}
	return false, nil
}

// fitsWithin drives a fit check: it repeatedly pops from the queue, feeding
// each element to the predicate and a running width accumulator checked
// against budget.
//
// The check succeeds if the predicate stops or the queue is exhausted while
// still under budget. It fails as soon as a token pushes the line past the
// budget, or a hard line break is reached before the predicate stops; a flat
// line cannot contain a forced break. Content delimited by expanded-only
// tags is skipped, since it would not render in the flat layout being
// measured, and interned references are expanded in place.
func fitsWithin(queue *fitsQueue, predicate fitsPredicate, budget int) (bool, error) {
	var used int
	for {
		element, ok := queue.pop()
		if !ok {
			return true, nil
		}
		stop, err := predicate.step(element)
		if err != nil {
			return false, err
		}
		if stop {
			return true, nil
		}

		switch element := element.(type) {
		case dom.Text:
			used += uniseg.StringWidth(string(element))
		case dom.Line:
			switch element.Mode() {
			case dom.LineHard:
				return false, nil
			case dom.LineSpace:
				used++
			case dom.LineSoft:
				// Disappears when flat.
			}
		case *dom.Interned:
			queue.extendFront(element.Elements())
		case dom.Tag:
			if element.Kind() == dom.TagKindExpanded && element.IsStart() {
				if err := queue.skipMatched(dom.TagKindExpanded); err != nil {
					return false, err
				}
			}
		}

		if used > budget {
			return false, nil
		}
	}
}
