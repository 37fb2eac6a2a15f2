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
	"strconv"
)

// Element is one unit of the printable intermediate representation.
//
// Element is a closed interface: the only implementations are [Text], [Line],
// [Tag], and [*Interned].
type Element interface {
	fmt.Stringer

	element()
}

// Text is a run of printable characters. It must not contain line breaks;
// those are represented by [Line] elements so the printer can account for
// them when measuring.
type Text string

func (Text) element() {}

// String implements [fmt.Stringer].
func (t Text) String() string {
	return strconv.Quote(string(t))
}

// LineMode describes how a [Line] renders depending on the layout chosen for
// the content around it.
type LineMode int8

const (
	// LineSoft renders as nothing when flat and as a line break when
	// expanded.
	LineSoft LineMode = iota
	// LineSpace renders as a single space when flat and as a line break when
	// expanded.
	LineSpace
	// LineHard always renders as a line break. Content containing a hard
	// line can never fit on one line.
	LineHard
)

// Line is a point where the printer may or must break the line.
type Line LineMode

const (
	// SoftLine is a [Line] that disappears when rendered flat.
	SoftLine = Line(LineSoft)
	// SpaceLine is a [Line] that renders as a space when rendered flat.
	SpaceLine = Line(LineSpace)
	// HardLine is a forced line break.
	HardLine = Line(LineHard)
)

func (Line) element() {}

// Mode returns how the line renders.
func (l Line) Mode() LineMode {
	return LineMode(l)
}

// String implements [fmt.Stringer].
func (l Line) String() string {
	switch LineMode(l) {
	case LineSoft:
		return "SoftLine"
	case LineSpace:
		return "SpaceLine"
	case LineHard:
		return "HardLine"
	default:
		return fmt.Sprintf("Line(%d)", int8(l))
	}
}
