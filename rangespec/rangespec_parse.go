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

import (
	"fmt"
	"strconv"
)

// DefaultMaxOrdinal is the largest one-based column number Parse accepts
// when the Parser does not configure its own cap.
const DefaultMaxOrdinal = 255

// Parser parses selector strings. The zero value is ready to use.
type Parser struct {
	// MaxOrdinal is the largest one-based column number accepted. Numbers
	// above the cap are rejected with a parse error, never truncated. Zero
	// means DefaultMaxOrdinal.
	MaxOrdinal int
}

// ParseError describes a selector string that could not be parsed. It is the
// only error type returned by Parse, and it is never recoverable: the caller
// must abort before processing any rows.
type ParseError struct {
	// Input is the full selector string handed to Parse.
	Input string
	// Parsed is the valid selector prefix recognized before parsing stopped.
	// It is empty when no prefix parsed at all.
	Parsed Selector
	// Remainder is the unconsumed suffix following the recognized prefix.
	Remainder string
	// Reason describes the failure when no prefix was recognized.
	Reason string
}

func (e *ParseError) Error() string {
	if len(e.Parsed) != 0 {
		return fmt.Sprintf("invalid selector %q: parsed %q but trailing input %q remains", e.Input, e.Parsed.String(), e.Remainder)
	}
	return fmt.Sprintf("invalid selector %q: %s", e.Input, e.Reason)
}

// Parse parses a selector string with the default column number cap.
func Parse(text string) (Selector, error) {
	return Parser{}.Parse(text)
}

// Parse converts a selector string into a Selector.
//
// The whole input must be consumed: a selector with a valid prefix followed
// by junk ("1,3-x") is reported as a trailing-input error carrying both the
// recognized prefix and the offending remainder.
func (p Parser) Parse(text string) (Selector, error) {
	max := p.MaxOrdinal
	if max <= 0 {
		max = DefaultMaxOrdinal
	}
	sc := &scanner{input: text, max: max}

	first, ok := sc.sRange()
	if !ok {
		return nil, &ParseError{Input: text, Reason: sc.reason()}
	}
	sel := Selector{first}
	for {
		mark := sc.pos
		if !sc.eat(',') {
			break
		}
		rs, ok := sc.sRange()
		if !ok {
			// The comma belongs to the unconsumed remainder.
			sc.pos = mark
			break
		}
		sel = append(sel, rs)
	}
	if sc.pos != len(text) {
		return nil, &ParseError{Input: text, Parsed: sel, Remainder: text[sc.pos:]}
	}
	return sel, nil
}

// scanner is the cursor state shared by the range alternatives.
type scanner struct {
	input string
	pos   int
	max   int
	// fault records the most specific rejection (zero column, number over
	// the cap) seen while trying alternatives, for the final error message.
	fault string
}

func (s *scanner) reason() string {
	if s.fault != "" {
		return s.fault
	}
	if s.input == "" {
		return "empty selector"
	}
	return fmt.Sprintf("expected a column number or range at %q", s.input[s.pos:])
}

func (s *scanner) eat(b byte) bool {
	if s.pos < len(s.input) && s.input[s.pos] == b {
		s.pos++
		return true
	}
	return false
}

// sRange parses one range at the cursor. The alternatives are attempted in
// the order interval, right-open, left-open, single; the order matters:
// "4-8" must parse as an interval rather than a left-open range with
// leftover input, and "-5" must parse as a right-open range rather than
// failing as a single missing its number.
func (s *scanner) sRange() (RangeSpec, bool) {
	for _, alt := range []func() (RangeSpec, bool){s.interval, s.rightOpen, s.leftOpen, s.single} {
		mark := s.pos
		if rs, ok := alt(); ok {
			return rs, true
		}
		s.pos = mark
	}
	return RangeSpec{}, false
}

func (s *scanner) interval() (RangeSpec, bool) {
	lo, ok := s.natural()
	if !ok {
		return RangeSpec{}, false
	}
	if !s.eat('-') {
		return RangeSpec{}, false
	}
	hi, ok := s.natural()
	if !ok {
		return RangeSpec{}, false
	}
	return RangeSpec{Kind: Interval, Lo: lo, Hi: hi}, true
}

func (s *scanner) rightOpen() (RangeSpec, bool) {
	if !s.eat('-') {
		return RangeSpec{}, false
	}
	hi, ok := s.natural()
	if !ok {
		return RangeSpec{}, false
	}
	return RangeSpec{Kind: RightOpen, Lo: hi}, true
}

func (s *scanner) leftOpen() (RangeSpec, bool) {
	lo, ok := s.natural()
	if !ok {
		return RangeSpec{}, false
	}
	if !s.eat('-') {
		return RangeSpec{}, false
	}
	return RangeSpec{Kind: LeftOpen, Lo: lo}, true
}

func (s *scanner) single() (RangeSpec, bool) {
	v, ok := s.natural()
	if !ok {
		return RangeSpec{}, false
	}
	return RangeSpec{Kind: Single, Lo: v}, true
}

// natural parses a run of decimal digits into a zero-based column offset.
// Leading zeros are allowed. Zero ("column 0" does not exist) and numbers
// above the cap are rejected.
func (s *scanner) natural() (int, bool) {
	start := s.pos
	for s.pos < len(s.input) && s.input[s.pos] >= '0' && s.input[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start {
		return 0, false
	}
	digits := s.input[start:s.pos]
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || v > uint64(s.max) {
		s.fault = fmt.Sprintf("column number %s exceeds the maximum of %d", digits, s.max)
		return 0, false
	}
	if v == 0 {
		s.fault = "column 0 does not exist; columns are numbered from 1"
		return 0, false
	}
	return int(v) - 1, true
}
