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

// Package rangespec parses column range selectors such as "1,3-5,8-" and
// applies them to rows of fields.
//
// A selector is a comma-separated list of ranges. Each range takes one of
// four shapes, written with one-based column numbers:
//
//	3       a single column
//	4-      every column from 4 through the end of the row
//	-5      every column from the start of the row through 5
//	7-9     columns 7 through 9 inclusive
//
// Ranges are replayed against each row in the order they were written, so a
// selector may reorder and duplicate columns: "3,1-3" emits column 3 followed
// by columns 1 through 3 again. Columns beyond the width of a row are
// silently skipped rather than treated as an error.
package rangespec

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the four shapes a RangeSpec can take.
type Kind int

const (
	// Single selects exactly one column.
	Single Kind = iota
	// LeftOpen selects every column from a start column through the end of
	// the row.
	LeftOpen
	// RightOpen selects every column from the start of the row through an
	// end column.
	RightOpen
	// Interval selects an inclusive run of columns. An interval whose start
	// lies beyond its end selects nothing.
	Interval
)

// RangeSpec is one parsed column range.
//
// Lo and Hi are zero-based column offsets: the value 0 is the user's
// "column 1". Hi is meaningful only for Interval ranges.
type RangeSpec struct {
	Kind Kind
	Lo   int
	Hi   int
}

// intervalEnd is the open upper bound of a LeftOpen range.
const intervalEnd = int(^uint(0) >> 1)

// bounds returns the half-open index interval [start, end) covered by the
// range. All four shapes reduce to this form; an empty Interval yields
// end <= start.
func (rs RangeSpec) bounds() (start, end int) {
	switch rs.Kind {
	case Single:
		return rs.Lo, rs.Lo + 1
	case LeftOpen:
		return rs.Lo, intervalEnd
	case RightOpen:
		return 0, rs.Lo + 1
	case Interval:
		return rs.Lo, rs.Hi + 1
	}
	return 0, 0
}

// String renders the range in the selector grammar, using one-based column
// numbers.
func (rs RangeSpec) String() string {
	switch rs.Kind {
	case Single:
		return strconv.Itoa(rs.Lo + 1)
	case LeftOpen:
		return strconv.Itoa(rs.Lo+1) + "-"
	case RightOpen:
		return "-" + strconv.Itoa(rs.Lo+1)
	case Interval:
		return fmt.Sprintf("%d-%d", rs.Lo+1, rs.Hi+1)
	}
	return "<invalid>"
}

// Selector is an ordered sequence of ranges parsed from a selector string.
// Order is significant: it dictates output column order, including repeats
// when ranges overlap. A Selector is constructed once by Parse and never
// mutated afterwards.
type Selector []RangeSpec

// String renders the selector in the grammar accepted by Parse.
func (s Selector) String() string {
	parts := make([]string, len(s))
	for i, rs := range s {
		parts[i] = rs.String()
	}
	return strings.Join(parts, ",")
}
