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

package printer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/docfmt/dom"
	"github.com/bufbuild/docfmt/internal/golden"
	"github.com/bufbuild/docfmt/printer"
)

// TestPrintCorpus renders each document under testdata at a wide and a narrow
// width and compares the results against checked-in golden files.
//
// Corpus documents are YAML sequences of elements: {text: ...}, {line:
// soft|space|hard}, and {entry|group|indent|flat|expanded: [...]} for tagged
// regions. A YAML alias renders as an interned reference to the expansion of
// its anchor, so sharing in the input becomes sharing in the document.
func TestPrintCorpus(t *testing.T) {
	t.Parallel()

	widths := []int{80, 10}
	corpus := golden.Corpus{
		Root:      "testdata",
		Refresh:   "DOCFMT_REFRESH",
		Extension: "yaml",
		Outputs: []golden.Output{
			{Extension: "80.out"},
			{Extension: "10.out"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		doc := parseDocument(t, text)
		for i, width := range widths {
			got, err := printer.Print(doc, printer.Options{MaxWidth: width})
			require.NoError(t, err)
			outputs[i] = got
		}
	})
}

var tagKinds = map[string]dom.TagKind{
	"entry":    dom.TagKindEntry,
	"group":    dom.TagKindGroup,
	"indent":   dom.TagKindIndent,
	"flat":     dom.TagKindFlat,
	"expanded": dom.TagKindExpanded,
}

// corpusParser converts a corpus YAML document into elements.
type corpusParser struct {
	pool     dom.Pool
	interned map[*yaml.Node]*dom.Interned
}

func parseDocument(t *testing.T, text string) []dom.Element {
	t.Helper()

	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(text), &root))
	require.NotEmpty(t, root.Content, "empty corpus document")

	parser := &corpusParser{interned: map[*yaml.Node]*dom.Interned{}}
	return parser.sequence(t, root.Content[0])
}

func (p *corpusParser) sequence(t *testing.T, node *yaml.Node) []dom.Element {
	t.Helper()
	require.Equal(t, yaml.SequenceNode, node.Kind, "line %d: expected a sequence", node.Line)

	var out []dom.Element
	for _, item := range node.Content {
		out = p.element(t, out, item)
	}
	return out
}

func (p *corpusParser) element(t *testing.T, out []dom.Element, node *yaml.Node) []dom.Element {
	t.Helper()

	if node.Kind == yaml.AliasNode {
		interned, ok := p.interned[node.Alias]
		if !ok {
			interned = p.pool.Intern(p.element(t, nil, node.Alias)...)
			p.interned[node.Alias] = interned
		}
		return append(out, interned)
	}

	require.Equal(t, yaml.MappingNode, node.Kind, "line %d: expected a mapping", node.Line)
	require.Len(t, node.Content, 2, "line %d: expected a single key", node.Line)
	key, value := node.Content[0], node.Content[1]

	switch key.Value {
	case "text":
		return append(out, dom.Text(value.Value))
	case "line":
		switch value.Value {
		case "soft":
			return append(out, dom.SoftLine)
		case "space":
			return append(out, dom.SpaceLine)
		case "hard":
			return append(out, dom.HardLine)
		}
		t.Fatalf("line %d: unknown line mode %q", value.Line, value.Value)
	default:
		kind, ok := tagKinds[key.Value]
		if !ok {
			t.Fatalf("line %d: unknown element %q", key.Line, key.Value)
		}
		out = append(out, dom.StartTag(kind))
		out = append(out, p.sequence(t, value)...)
		return append(out, dom.EndTag(kind))
	}
	return out
}
