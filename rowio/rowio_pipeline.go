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
	"fmt"
	"io"

	"csvcut/rangespec"
)

// Run pulls every record from src, applies target, and writes the selected
// values to w, one record at a time.
//
// Row-level failures (a record the source could not tokenize, a row the
// writer could not render) are reported to diag and the stream continues;
// they are never escalated. Run returns when src is exhausted, reporting the
// number of rows written and the number skipped.
func Run(src *Source, target rangespec.Selector, w *ResultWriter, diag io.Writer) (written, skipped int) {
	for {
		rec, err := src.Read()
		if err == io.EOF {
			return written, skipped
		}
		if err != nil {
			fmt.Fprintln(diag, err)
			skipped++
			continue
		}
		if err := w.Write(target.Select(rec)); err != nil {
			fmt.Fprintln(diag, err)
			skipped++
			continue
		}
		written++
	}
}
