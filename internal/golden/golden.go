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

// Package golden runs tests against a corpus of golden files: checked-in
// inputs paired with checked-in expected outputs. Setting the refresh
// environment variable regenerates the outputs instead of comparing them.
package golden

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// Corpus is a directory of test inputs, one test case per file.
type Corpus struct {
	// Root is the directory holding the corpus, usually "testdata".
	Root string
	// Refresh is the name of an environment variable; when it is set
	// non-empty, output files are rewritten instead of compared.
	Refresh string
	// Extension is the extension of input files, without the leading dot.
	Extension string
	// Outputs describes the expected-output files of each test case.
	Outputs []Output
}

// Output is one expected-output file of a test case. Its path is the input
// path with the corpus extension replaced by Extension.
type Output struct {
	Extension string
}

// Run invokes test once per input file. test receives the input's path and
// text and fills in outputs, one string per [Output]; Run then compares each
// against the checked-in file, or rewrites the file when refreshing.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	refresh := c.Refresh != "" && os.Getenv(c.Refresh) != ""

	var inputs []string
	err := filepath.WalkDir(c.Root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.HasSuffix(path, "."+c.Extension) {
			inputs = append(inputs, path)
		}
		return nil
	})
	require.NoError(t, err, "golden: walking %q", c.Root)

	for _, path := range inputs {
		t.Run(filepath.Base(path), func(t *testing.T) {
			text, err := os.ReadFile(path)
			require.NoError(t, err, "golden: reading input %q", path)

			outputs := make([]string, len(c.Outputs))
			test(t, path, string(text), outputs)

			for i, output := range c.Outputs {
				outputPath := strings.TrimSuffix(path, c.Extension) + output.Extension
				if refresh {
					err := os.WriteFile(outputPath, []byte(outputs[i]), 0o600)
					require.NoError(t, err, "golden: writing output %q", outputPath)
					continue
				}

				want, err := os.ReadFile(outputPath)
				require.NoError(t, err, "golden: reading output %q; set %s=1 to generate it", outputPath, c.Refresh)
				if string(want) == outputs[i] {
					continue
				}

				diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
					A:        difflib.SplitLines(string(want)),
					B:        difflib.SplitLines(outputs[i]),
					FromFile: outputPath,
					ToFile:   "got",
					Context:  3,
				})
				require.NoError(t, err)
				t.Errorf("golden: mismatch for %q; set %s=1 to regenerate\n%s", outputPath, c.Refresh, diff)
			}
		})
	}
}
