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

// Package printer renders a [dom] document to text, deciding at each group
// whether its content fits flat within the configured line width or must be
// broken across multiple lines.
//
// The interesting part is answering "does the upcoming content fit?" without
// disturbing the ongoing print. The printer consumes elements from a print
// queue, the single source of truth for what remains to be printed. When it
// reaches a choice point, it lays a fits queue over the print queue's current
// position: a speculative cursor whose reads fall through to a snapshot of
// the print queue's frames and whose writes land on a private overlay. The
// measurement runs against that view and is discarded once the decision is
// made, so no layout question ever has an observable side effect on the real
// print state, and nothing is cloned to ask it.
//
// Malformed documents, meaning unbalanced structural tags, are a bug in the
// stage that constructed the document. They surface as errors wrapping
// [ErrInvalidEndTag], [ErrInvalidStartTag], or [ErrMissingEndTag]; there is
// no recovery path.
package printer
