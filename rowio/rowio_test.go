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
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readAllRecords(t *testing.T, s *Source) ([][]string, []error) {
	t.Helper()
	var (
		records [][]string
		rowErrs []error
	)
	for {
		rec, err := s.Read()
		if err == io.EOF {
			return records, rowErrs
		}
		if err != nil {
			rowErrs = append(rowErrs, err)
			continue
		}
		records = append(records, rec.Strings())
	}
}

func TestSourceNoHeader(t *testing.T) {
	s := NewCSVSource(strings.NewReader("a,b\n1,2\n"), ',', false)
	if s.Header() != nil {
		t.Errorf("Header() = %v, want nil", s.Header().Strings())
	}
	records, rowErrs := readAllRecords(t, s)
	want := [][]string{{"a", "b"}, {"1", "2"}}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("unexpected diff (-want, +got):\n%s", diff)
	}
	if len(rowErrs) != 0 {
		t.Errorf("row errors: %v, want none", rowErrs)
	}
}

func TestSourceHeader(t *testing.T) {
	s := NewCSVSource(strings.NewReader("a,b\n1,2\n"), ',', true)
	if got, want := s.Header().Strings(), []string{"a", "b"}; !cmp.Equal(want, got) {
		t.Errorf("Header() = %v, want %v", got, want)
	}
	if got, want := s.Header().Number(), RowNumber(0); got != want {
		t.Errorf("Header().Number() = %v, want %v", got, want)
	}
	records, _ := readAllRecords(t, s)
	want := [][]string{{"1", "2"}}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("unexpected diff (-want, +got):\n%s", diff)
	}
}

func TestSourceHeaderOnEmptyInput(t *testing.T) {
	s := NewCSVSource(strings.NewReader(""), ',', true)
	if s.Header() != nil {
		t.Errorf("Header() = %v, want nil for empty input", s.Header().Strings())
	}
	if _, err := s.Read(); err != io.EOF {
		t.Errorf("Read() error = %v, want io.EOF", err)
	}
}

func TestSourceDelimiter(t *testing.T) {
	s := NewCSVSource(strings.NewReader("a;b;c\n1;2;3\n"), ';', false)
	records, _ := readAllRecords(t, s)
	want := [][]string{{"a", "b", "c"}, {"1", "2", "3"}}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("unexpected diff (-want, +got):\n%s", diff)
	}
}

func TestSourceRecoversAfterBadRow(t *testing.T) {
	// The second data row has three fields where the first set a width of
	// two; it is reported as a row error and the stream continues.
	s := NewCSVSource(strings.NewReader("a,b\n1,2,3\n4,5\n"), ',', false)
	records, rowErrs := readAllRecords(t, s)

	want := [][]string{{"a", "b"}, {"4", "5"}}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("unexpected diff (-want, +got):\n%s", diff)
	}
	if len(rowErrs) != 1 {
		t.Fatalf("row errors: %v, want exactly one", rowErrs)
	}
	if re := regexp.MustCompile(`^row 2: `); !re.MatchString(rowErrs[0].Error()) {
		t.Errorf("row error %q does not name row 2", rowErrs[0])
	}
}
