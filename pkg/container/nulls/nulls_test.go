// Copyright 2023 ColumnForge
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

package nulls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildContains(t *testing.T) {
	nsp := Build(1, 3)
	require.True(t, Any(nsp))
	require.Equal(t, 2, Length(nsp))
	require.True(t, Contains(nsp, 1))
	require.True(t, Contains(nsp, 3))
	require.False(t, Contains(nsp, 0))
	require.False(t, Contains(nsp, 2))

	empty := New()
	require.False(t, Any(empty))
	require.Equal(t, 0, Length(empty))
	require.False(t, Contains(empty, 0))
}

func TestOr(t *testing.T) {
	a := Build(0, 2)
	b := Build(2, 5)
	r := New()
	Or(a, b, r)
	require.Equal(t, []uint64{0, 2, 5}, r.ToArray())

	// inputs untouched
	require.Equal(t, []uint64{0, 2}, a.ToArray())
	require.Equal(t, []uint64{2, 5}, b.ToArray())

	// result owns its bitmap
	Add(r, 7)
	require.False(t, Contains(a, 7))
	require.False(t, Contains(b, 7))
}

func TestOrWithEmpty(t *testing.T) {
	r := New()
	Or(New(), nil, r)
	require.False(t, Any(r))

	Or(Build(4), nil, r)
	require.Equal(t, []uint64{4}, r.ToArray())
}

func TestSet(t *testing.T) {
	nsp := New()
	Set(nsp, Build(1))
	Set(nsp, Build(8))
	Set(nsp, nil)
	require.Equal(t, []uint64{1, 8}, nsp.ToArray())
}

func TestNilReceivers(t *testing.T) {
	require.NotPanics(t, func() { Add(nil, 1) })
	require.NotPanics(t, func() { Set(nil, Build(1)) })
	require.False(t, Any(nil))
	require.False(t, Contains(nil, 0))
	require.Equal(t, 0, Length(nil))
}

func TestCloneIsSame(t *testing.T) {
	nsp := Build(0, 9)
	dup := nsp.Clone()
	require.True(t, nsp.IsSame(dup))

	Add(dup, 4)
	require.False(t, nsp.IsSame(dup))
	require.False(t, Contains(nsp, 4))

	require.True(t, New().IsSame(nil))
	require.True(t, (&Nulls{}).IsSame(New()))
}

func TestString(t *testing.T) {
	require.Equal(t, "[]", String(New()))
	require.Equal(t, "[2 3]", String(Build(2, 3)))
}
