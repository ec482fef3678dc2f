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

// Package rowio connects the rangespec selection engine to delimited text
// streams. It reads records from a configurable delimited input, hands them
// to a Selector one at a time, and renders the selected values as plain
// comma-separated text or as JSON, one row per output line.
//
// Records are processed strictly one at a time and never retained, so the
// pipeline handles unbounded streams in constant memory.
package rowio

// RowNumber is used instead of an int for representing the position of a
// record in the input stream.
type RowNumber int

// InvalidRow is the row number of a record whose position is unknown.
const InvalidRow RowNumber = -1

// IsValid returns whether the number refers to a record in the stream.
func (n RowNumber) IsValid() bool {
	return n >= 0
}

// Offset returns the position of the record. The first record has offset 0.
func (n RowNumber) Offset() int {
	return int(n)
}

// Ordinal returns the 1-based position of the record. The first record has
// ordinal value 1.
func (n RowNumber) Ordinal() int {
	return n.Offset() + 1
}

// Record is one record of input fields together with its position in the
// stream. It implements rangespec.Row.
type Record struct {
	values []string
	num    RowNumber
}

// NewRecord returns a Record over the given field values.
func NewRecord(values []string, num RowNumber) *Record {
	return &Record{values, num}
}

// Strings returns the raw field values of the record.
func (r *Record) Strings() []string {
	if r == nil {
		return nil
	}
	return r.values
}

// Number returns the position of the record in the input stream.
func (r *Record) Number() RowNumber {
	if r == nil {
		return InvalidRow
	}
	return r.num
}

// Len returns the number of fields in the record.
func (r *Record) Len() int {
	return len(r.Strings())
}

// Field returns the field at zero-based offset i, reporting whether the
// offset is within the record.
func (r *Record) Field(i int) (string, bool) {
	if r == nil || i < 0 || i >= len(r.values) {
		return "", false
	}
	return r.values[i], true
}
