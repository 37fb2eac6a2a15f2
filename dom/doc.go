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

// Package dom defines the document element model consumed by the printer: a
// flat, tag-delimited sequence of printable units. A document is an ordinary
// []Element slice; there are three behaviors an [Element] can have.
//
//   - A token ([Text], [Line]) is an opaque printable fragment. It is atomic
//     and never expanded further.
//   - A [Tag] is a structural marker with a kind and a start or end role.
//     Tags are emitted in matched start/end pairs, and the nesting depth of
//     same-kind tags must balance before the document ends.
//   - An [Interned] reference stands in for a shared sub-sequence of
//     elements, owned by a [Pool]. The printer treats it as if its contents
//     were inlined at the point of reference, recursively.
//
// Documents are produced by a lowering stage elsewhere in the toolchain and
// are immutable for the duration of a print pass.
package dom
