/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fentec-project/gomcmc/data"
)

// writeCSV writes one row per sample, optionally preceded by a header
// naming the coordinates x0, x1, ...
func writeCSV(w io.Writer, samples data.Samples, header bool) error {
	cw := csv.NewWriter(w)

	if header && samples.Rows() > 0 {
		names := make([]string, samples.Cols())
		for j := range names {
			names[j] = "x" + strconv.Itoa(j)
		}
		if err := cw.Write(names); err != nil {
			return err
		}
	}

	row := make([]string, samples.Cols())
	for _, s := range samples {
		for j, v := range s {
			row[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
