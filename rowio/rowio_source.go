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

package rowio

import (
	"io"

	"github.com/oleg578/swiftcsv"
	"github.com/pkg/errors"
)

// RowReader is the interface of a reader that yields raw records from the
// data source. For example, swiftcsv.Reader and csv.Reader are RowReaders.
type RowReader interface {
	Read() ([]string, error)
}

// Source yields Records from a delimited text stream. When the stream
// carries a header, the header record is consumed up front and exposed via
// Header rather than through Read.
type Source struct {
	r      RowReader
	header *Record
	num    RowNumber
	// pending is an error from reading the header row, delivered on the
	// first call to Read so it surfaces as a row error rather than aborting
	// startup.
	pending error
}

// NewSource returns a Source over r.
//
// When hasHeader is set the first record is read immediately. A header with
// no fields counts as absent, so callers relying on Header degrade cleanly
// on empty input.
func NewSource(r RowReader, hasHeader bool) *Source {
	s := &Source{r: r}
	if !hasHeader {
		return s
	}
	values, err := r.Read()
	switch {
	case err == io.EOF:
		// Empty stream: no header, no data.
	case err != nil:
		s.pending = errors.Wrap(err, "header row")
		s.num++
	case len(values) == 0:
		s.num++
	default:
		s.header = NewRecord(values, s.num)
		s.num++
	}
	return s
}

// NewCSVSource returns a Source reading delimiter-separated values from r.
func NewCSVSource(r io.Reader, delimiter byte, hasHeader bool) *Source {
	cr := swiftcsv.NewReader(r)
	cr.Comma = delimiter
	return NewSource(cr, hasHeader)
}

// Header returns the header record, or nil when the source has none.
func (s *Source) Header() *Record {
	return s.header
}

// Read returns the next data record. It returns io.EOF at the end of the
// stream. Any other error refers only to the record at the reported
// position; the source remains readable, so callers can report the error
// and continue with subsequent records.
func (s *Source) Read() (*Record, error) {
	if s.pending != nil {
		err := s.pending
		s.pending = nil
		return nil, err
	}
	values, err := s.r.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	num := s.num
	s.num++
	if err != nil {
		return nil, errors.Wrapf(err, "row %d", num.Ordinal())
	}
	return NewRecord(values, num), nil
}
