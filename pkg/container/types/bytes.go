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

package types

// Bytes holds the rows of a variable-length string column in one flat
// buffer, addressed by parallel offset/length slices.
type Bytes struct {
	Data    []byte
	Offsets []uint32
	Lengths []uint32
}

func (b *Bytes) Len() int {
	return len(b.Offsets)
}

func (b *Bytes) Get(i int) []byte {
	off := b.Offsets[i]
	return b.Data[off : off+b.Lengths[i]]
}

func (b *Bytes) GetString(i int) string {
	return string(b.Get(i))
}

func (b *Bytes) Append(vs ...[]byte) {
	for _, v := range vs {
		b.Offsets = append(b.Offsets, uint32(len(b.Data)))
		b.Lengths = append(b.Lengths, uint32(len(v)))
		b.Data = append(b.Data, v...)
	}
}
