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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceStack(t *testing.T) {
	t.Parallel()

	s := new(sliceStack[int])
	_, ok := s.pop()
	assert.False(t, ok)
	assert.Equal(t, 0, s.len())

	s.push(1)
	s.push(2)
	assert.Equal(t, 2, s.len())

	v, ok := s.top()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = s.pop()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = s.pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = s.pop()
	assert.False(t, ok)
}

func TestLayeredStack(t *testing.T) {
	t.Parallel()

	base := []string{"bottom", "top"}

	s := newLayeredStack(base, nil)
	assert.Equal(t, 2, s.len())

	// Reads fall through to the snapshot until something is pushed.
	v, ok := s.top()
	require.True(t, ok)
	assert.Equal(t, "top", v)

	s.push("overlay")
	assert.Equal(t, 3, s.len())
	v, ok = s.top()
	require.True(t, ok)
	assert.Equal(t, "overlay", v)

	// Pops come off the overlay first, then consume the snapshot view.
	for _, want := range []string{"overlay", "top", "bottom"} {
		v, ok = s.pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok = s.pop()
	assert.False(t, ok)

	// The base storage is untouched: a second overlay over the same slice
	// sees everything again.
	require.Equal(t, []string{"bottom", "top"}, base)
	fresh := newLayeredStack(base, nil)
	v, ok = fresh.pop()
	require.True(t, ok)
	assert.Equal(t, "top", v)
}

func TestLayeredStackFinish(t *testing.T) {
	t.Parallel()

	s := newLayeredStack([]string{"base"}, nil)
	s.push("a")
	s.push("b")
	_, ok := s.pop()
	require.True(t, ok)

	saved := s.finish()
	assert.Equal(t, []string{"a"}, saved)

	// A later stack reuses the salvaged storage and starts empty.
	next := newLayeredStack([]string{"other"}, saved)
	assert.Equal(t, 1, next.len())
	v, ok := next.pop()
	require.True(t, ok)
	assert.Equal(t, "other", v)
}
