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
	"io"

	json "github.com/goccy/go-json"
	"github.com/oleg578/swiftcsv"
	"github.com/pkg/errors"

	"csvcut/rangespec"
)

// OutputDelimiter separates fields in plain output. It is always a comma,
// independent of the configured input delimiter.
const OutputDelimiter byte = ','

// ResultWriter renders selected rows to an output stream, one row per line,
// in one of three shapes:
//
//   - plain text: values separated by OutputDelimiter;
//   - a JSON array of values, when no header is available;
//   - a JSON object mapping selected header names to values, when one is.
//
// Object keys appear in selector order, so output is deterministic across
// runs.
type ResultWriter struct {
	out  io.Writer
	csvw *swiftcsv.Writer
	// header holds the selector applied to the header row; nil means no
	// header and selects JSON array output.
	header []string
}

// NewResultWriter returns a ResultWriter writing to out. The target selector
// is applied to the header record here, once, so each data row only pays for
// its own selection. A nil header selects plain or JSON-array output.
func NewResultWriter(out io.Writer, asJSON bool, target rangespec.Selector, header *Record) *ResultWriter {
	w := &ResultWriter{out: out}
	if asJSON {
		if header != nil {
			w.header = target.Select(header)
		}
		return w
	}
	w.csvw = swiftcsv.NewWriter(out)
	w.csvw.Comma = OutputDelimiter
	return w
}

// Write renders one selected row. A returned error concerns this row only;
// the writer stays usable for subsequent rows.
func (w *ResultWriter) Write(selected []string) error {
	if w.csvw == nil {
		return w.writeJSON(selected)
	}
	if err := w.csvw.Write(selected); err != nil {
		return errors.Wrap(err, "writing row")
	}
	return w.csvw.Flush()
}

func (w *ResultWriter) writeJSON(selected []string) error {
	var (
		data []byte
		err  error
	)
	if w.header == nil {
		if selected == nil {
			selected = []string{}
		}
		data, err = json.Marshal(selected)
	} else {
		data, err = json.Marshal(zipObject(w.header, selected))
	}
	if err != nil {
		return errors.Wrap(err, "encoding row as JSON")
	}
	data = append(data, '\n')
	_, err = w.out.Write(data)
	return err
}

// object is an insertion-ordered JSON object. A plain map would serialize
// with unspecified key order; selected rows must keep selector order.
type object struct {
	keys   []string
	values []string
}

// zipObject pairs header names with row values positionally, truncating at
// the shorter of the two.
func zipObject(keys, values []string) *object {
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}
	return &object{keys: keys[:n], values: values[:n]}
}

// MarshalJSON renders the object with its keys in insertion order.
func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(o.keys[i])
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
