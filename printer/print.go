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
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/docfmt/dom"
	"github.com/bufbuild/docfmt/internal/ext/slicesx"
)

const (
	space = " "

	defaultMaxWidth = 80
	defaultIndent   = "  "
)

// Options configure rendering.
type Options struct {
	// MaxWidth is the line-width budget in columns. Content that measures
	// past it is broken. Defaults to 80.
	MaxWidth int
	// Indent is the string written per indentation level. Defaults to two
	// spaces.
	Indent string
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = defaultMaxWidth
	}
	if o.Indent == "" {
		o.Indent = defaultIndent
	}
	return o
}

// Print renders root to text. Groups and entries whose flat rendering fits
// within opts.MaxWidth stay on one line; everything else breaks.
//
// An empty root renders as the empty string. The only errors are the
// malformed-document class documented on [InvalidDocumentError].
func Print(root []dom.Element, opts Options) (string, error) {
	p := printer{opts: opts.withDefaults(), queue: newPrintQueue(root)}
	if err := p.print(); err != nil {
		return "", err
	}
	return p.out.String(), nil
}

// Fits reports whether root rendered flat stays within opts.MaxWidth. The
// whole remaining document is measured; a hard line break anywhere in it
// means it does not fit.
func Fits(root []dom.Element, opts Options) (bool, error) {
	opts = opts.withDefaults()
	queue := newPrintQueue(root)
	fits := newFitsQueue(&queue, nil)
	return fitsWithin(&fits, allPredicate{}, opts.MaxWidth)
}

// layoutMode is the rendering decision for one group or entry.
type layoutMode int8

const (
	// layoutExpanded renders every line element as a line break.
	layoutExpanded layoutMode = iota
	// layoutFlat renders soft lines as nothing and space lines as spaces.
	layoutFlat
)

// printer holds the state of one print pass.
type printer struct {
	opts  Options
	queue printQueue

	// Overlay frames salvaged from the previous fit check, reused to avoid
	// an allocation per layout decision.
	saved [][]dom.Element

	// Innermost group and entry decisions; empty means expanded.
	modes  []layoutMode
	indent int

	out    strings.Builder
	column int
	// Indentation owed to the current line, written before its first token
	// so blank lines carry no trailing whitespace.
	pendingIndent bool
}

func (p *printer) print() error {
	for {
		element, ok := p.queue.pop()
		if !ok {
			return nil
		}
		if err := p.element(element); err != nil {
			return err
		}
	}
}

func (p *printer) element(element dom.Element) error {
	switch element := element.(type) {
	case dom.Text:
		p.text(string(element))
	case dom.Line:
		p.line(element.Mode())
	case *dom.Interned:
		p.queue.extendFront(element.Elements())
	case dom.Tag:
		return p.tag(element)
	}
	return nil
}

func (p *printer) tag(tag dom.Tag) error {
	switch tag.Kind() {
	case dom.TagKindGroup, dom.TagKindEntry:
		if tag.IsEnd() {
			p.popMode()
			return nil
		}
		mode := layoutFlat
		if p.mode() == layoutExpanded {
			fits, err := p.fitsFlat(tag)
			if err != nil {
				return err
			}
			if !fits {
				mode = layoutExpanded
			}
		}
		p.modes = append(p.modes, mode)
	case dom.TagKindIndent:
		if tag.IsStart() {
			p.indent++
		} else if p.indent > 0 {
			p.indent--
		}
	case dom.TagKindFlat:
		if tag.IsStart() && p.mode() == layoutExpanded {
			return p.queue.skipMatched(dom.TagKindFlat)
		}
	case dom.TagKindExpanded:
		if tag.IsStart() && p.mode() == layoutFlat {
			return p.queue.skipMatched(dom.TagKindExpanded)
		}
	}
	return nil
}

// fitsFlat measures whether the region tag opens, rendered flat, fits on
// what is left of the current line. The measurement runs on a fits queue
// layered over the print queue; tag itself, already consumed by the print
// loop, is replayed onto the overlay so the predicate sees a balanced
// region. The print queue is untouched when this returns.
func (p *printer) fitsFlat(tag dom.Tag) (bool, error) {
	fits := newFitsQueue(&p.queue, p.saved)
	fits.pushFront(tag)
	ok, err := fitsWithin(&fits, singleEntry(tag.Kind()), p.opts.MaxWidth-p.currentColumn())
	p.saved = fits.finish()
	return ok, err
}

// mode returns the innermost layout decision.
func (p *printer) mode() layoutMode {
	if mode, ok := slicesx.Last(p.modes); ok {
		return mode
	}
	return layoutExpanded
}

func (p *printer) popMode() {
	if len(p.modes) > 0 {
		p.modes = p.modes[:len(p.modes)-1]
	}
}

func (p *printer) text(text string) {
	if p.pendingIndent {
		indent := strings.Repeat(p.opts.Indent, p.indent)
		p.out.WriteString(indent)
		p.column = uniseg.StringWidth(indent)
		p.pendingIndent = false
	}
	p.out.WriteString(text)
	p.column += uniseg.StringWidth(text)
}

func (p *printer) line(mode dom.LineMode) {
	if p.mode() == layoutFlat && mode != dom.LineHard {
		if mode == dom.LineSpace {
			p.text(space)
		}
		return
	}
	p.out.WriteString("\n")
	p.column = 0
	p.pendingIndent = true
}

// currentColumn is the column the next token would start at, counting
// indentation that has not been written yet.
func (p *printer) currentColumn() int {
	if p.pendingIndent {
		return p.indent * uniseg.StringWidth(p.opts.Indent)
	}
	return p.column
}
