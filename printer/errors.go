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
	"errors"
	"fmt"

	"github.com/bufbuild/docfmt/dom"
)

// Sentinel errors for structurally malformed documents. All of them indicate
// a bug in the stage that constructed the document, never bad user input, so
// callers should treat them as internal errors distinct from user-facing
// formatting diagnostics.
var (
	// ErrInvalidEndTag is reported when an end tag closes with no matching
	// start tag in scope.
	ErrInvalidEndTag = errors.New("invalid end tag")
	// ErrInvalidStartTag is reported when an element appears where only an
	// entry boundary was expected.
	ErrInvalidStartTag = errors.New("invalid start tag")
	// ErrMissingEndTag is reported when the document ends while a tag is
	// still open.
	ErrMissingEndTag = errors.New("missing end tag")
)

// InvalidDocumentError reports a structurally malformed document: a tag
// pairing violation found while traversing it.
//
// The value of Error() names the violated tag kind and, when one was
// available, the offending element. Unwrap() returns the matching sentinel,
// so errors.Is works against [ErrInvalidEndTag], [ErrInvalidStartTag], and
// [ErrMissingEndTag].
type InvalidDocumentError struct {
	// Kind is the tag kind whose pairing was violated.
	Kind dom.TagKind
	// Element is the offending element, if one was available.
	Element dom.Element

	cause error
}

// Error implements error.
func (e *InvalidDocumentError) Error() string {
	if e.Element != nil {
		return fmt.Sprintf("%v: %v (found %v)", e.cause, e.Kind, e.Element)
	}
	return fmt.Sprintf("%v: %v", e.cause, e.Kind)
}

// Unwrap returns the sentinel error classifying the violation.
func (e *InvalidDocumentError) Unwrap() error {
	return e.cause
}

func invalidEndTag(kind dom.TagKind, element dom.Element) error {
	return &InvalidDocumentError{Kind: kind, Element: element, cause: ErrInvalidEndTag}
}

func invalidStartTag(kind dom.TagKind, element dom.Element) error {
	return &InvalidDocumentError{Kind: kind, Element: element, cause: ErrInvalidStartTag}
}

func missingEndTag(kind dom.TagKind) error {
	return &InvalidDocumentError{Kind: kind, cause: ErrMissingEndTag}
}
