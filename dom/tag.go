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

import "fmt"

// TagKind identifies what a matched pair of [Tag]s delimits.
type TagKind int8

const (
	TagKindUnknown TagKind = iota
	// TagKindEntry delimits one item of a delimited list or fill sequence.
	// Entries are measured independently of their later siblings.
	TagKindEntry
	// TagKindGroup delimits content that prefers to render flat and breaks
	// as a unit when it does not fit.
	TagKindGroup
	// TagKindIndent delimits content printed one indentation level deeper.
	TagKindIndent
	// TagKindFlat delimits content rendered only when the enclosing layout
	// is flat.
	TagKindFlat
	// TagKindExpanded delimits content rendered only when the enclosing
	// layout is broken.
	TagKindExpanded
)

// String implements [fmt.Stringer].
func (k TagKind) String() string {
	switch k {
	case TagKindEntry:
		return "Entry"
	case TagKindGroup:
		return "Group"
	case TagKindIndent:
		return "Indent"
	case TagKindFlat:
		return "Flat"
	case TagKindExpanded:
		return "Expanded"
	default:
		return fmt.Sprintf("TagKind(%d)", int8(k))
	}
}

// Tag is a structural marker delimiting a region with layout meaning. Tags
// carry no content of their own; everything between a start tag and its
// matching end tag belongs to the region.
type Tag struct {
	kind TagKind
	end  bool
}

// StartTag returns the tag opening a region of the given kind.
func StartTag(kind TagKind) Tag {
	return Tag{kind: kind}
}

// EndTag returns the tag closing a region of the given kind.
func EndTag(kind TagKind) Tag {
	return Tag{kind: kind, end: true}
}

func (Tag) element() {}

// Kind returns the kind of region the tag delimits.
func (t Tag) Kind() TagKind {
	return t.kind
}

// IsStart reports whether the tag opens its region.
func (t Tag) IsStart() bool {
	return !t.end
}

// IsEnd reports whether the tag closes its region.
func (t Tag) IsEnd() bool {
	return t.end
}

// String implements [fmt.Stringer].
func (t Tag) String() string {
	if t.end {
		return "End" + t.kind.String()
	}
	return "Start" + t.kind.String()
}
