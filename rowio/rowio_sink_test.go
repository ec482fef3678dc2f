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
	"bytes"
	"testing"

	"csvcut/rangespec"
)

func mustParse(t *testing.T, selector string) rangespec.Selector {
	t.Helper()
	sel, err := rangespec.Parse(selector)
	if err != nil {
		t.Fatalf("Parse(%q): %v", selector, err)
	}
	return sel
}

func TestResultWriterPlain(t *testing.T) {
	var out bytes.Buffer
	w := NewResultWriter(&out, false, nil, nil)
	for _, row := range [][]string{
		{"a", "c", "d"},
		{"1", "3", "4"},
	} {
		if err := w.Write(row); err != nil {
			t.Fatalf("Write(%v): %v", row, err)
		}
	}
	if got, want := out.String(), "a,c,d\n1,3,4\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestResultWriterPlainQuotesDelimiter(t *testing.T) {
	var out bytes.Buffer
	w := NewResultWriter(&out, false, nil, nil)
	if err := w.Write([]string{"x", "a,b"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := out.String(), "x,\"a,b\"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestResultWriterPlainEmptySelection(t *testing.T) {
	var out bytes.Buffer
	w := NewResultWriter(&out, false, nil, nil)
	if err := w.Write(nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := out.String(), "\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestResultWriterJSONArray(t *testing.T) {
	var out bytes.Buffer
	w := NewResultWriter(&out, true, mustParse(t, "2"), nil)
	for _, row := range [][]string{{"3"}, {"12"}, nil} {
		if err := w.Write(row); err != nil {
			t.Fatalf("Write(%v): %v", row, err)
		}
	}
	if got, want := out.String(), "[\"3\"]\n[\"12\"]\n[]\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestResultWriterJSONObject(t *testing.T) {
	target := mustParse(t, "2")
	header := NewRecord([]string{"a", "b", "c"}, 0)
	var out bytes.Buffer
	w := NewResultWriter(&out, true, target, header)
	for _, row := range [][]string{{"3"}, {"12"}} {
		if err := w.Write(row); err != nil {
			t.Fatalf("Write(%v): %v", row, err)
		}
	}
	if got, want := out.String(), "{\"b\":\"3\"}\n{\"b\":\"12\"}\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestResultWriterJSONObjectKeysKeepSelectorOrder(t *testing.T) {
	// "3,1" selects column 3 before column 1; the emitted object must list
	// its keys in that order, not sorted.
	target := mustParse(t, "3,1")
	header := NewRecord([]string{"a", "b", "c"}, 0)
	var out bytes.Buffer
	w := NewResultWriter(&out, true, target, header)
	if err := w.Write(target.Select(NewRecord([]string{"1", "2", "3"}, 1))); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := out.String(), "{\"c\":\"3\",\"a\":\"1\"}\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestResultWriterJSONObjectTruncatesAtShorterRow(t *testing.T) {
	target := mustParse(t, "1,3")
	header := NewRecord([]string{"a", "b", "c"}, 0)
	var out bytes.Buffer
	w := NewResultWriter(&out, true, target, header)
	// A short row selects only column 1; the pairing stops there.
	if err := w.Write(target.Select(NewRecord([]string{"x"}, 1))); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := out.String(), "{\"a\":\"x\"}\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestResultWriterJSONObjectEscapesValues(t *testing.T) {
	target := mustParse(t, "1")
	header := NewRecord([]string{`he said "hi"`}, 0)
	var out bytes.Buffer
	w := NewResultWriter(&out, true, target, header)
	if err := w.Write([]string{"a\tb"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := out.String(), "{\"he said \\\"hi\\\"\":\"a\\tb\"}\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
