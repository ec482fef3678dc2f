// Copyright 2023 The csvcut Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rangespec

// Row is the minimal capability the selection engine needs from one record
// of input. Data rows and header rows are selected through the same
// interface.
type Row interface {
	// Len returns the number of fields in the row.
	Len() int
	// Field returns the field at zero-based offset i, reporting whether the
	// offset is within the row.
	Field(i int) (string, bool)
}

// Select applies every range in the selector to row, in declaration order,
// and returns the selected field values.
//
// Each range is replayed independently against the row, so overlapping
// ranges duplicate values and a later range may revisit earlier columns.
// Offsets beyond the width of the row select nothing. Select is pure: it
// keeps no state between rows, and an empty selector selects nothing from
// any row.
func (s Selector) Select(row Row) []string {
	var out []string
	n := row.Len()
	for _, rs := range s {
		start, end := rs.bounds()
		for i := 0; i < n; i++ {
			if i < start || i >= end {
				continue
			}
			if v, ok := row.Field(i); ok {
				out = append(out, v)
			}
		}
	}
	return out
}
