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

package data

import (
	"github.com/fentec-project/gomcmc/internal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Samples wraps a slice of Vector elements. It holds the states of a
// chain in iteration order, so it is a row-major matrix with one row
// per iteration and one column per coordinate.
//
// The j-th coordinate of the i-th sample can be obtained
// as s[i][j].
type Samples []Vector

// NewSamples accepts a slice of Vector elements and
// returns a new Samples instance holding copies of them.
// It returns error if not all the vectors have the same number of elements.
func NewSamples(vectors []Vector) (Samples, error) {
	newVectors := make([]Vector, len(vectors))
	for i, v := range vectors {
		if err := v.CheckDims(len(vectors[0])); err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		newVectors[i] = v.Copy()
	}

	return Samples(newVectors), nil
}

// Rows returns the number of samples.
func (s Samples) Rows() int {
	return len(s)
}

// Cols returns the dimension of the samples.
func (s Samples) Cols() int {
	if len(s) != 0 {
		return len(s[0])
	}

	return 0
}

// Dims returns the number of samples and their dimension.
func (s Samples) Dims() (int, int) {
	return s.Rows(), s.Cols()
}

// Column returns the trace of the j-th coordinate.
// It returns error if j >= the dimension of the samples.
func (s Samples) Column(j int) ([]float64, error) {
	if j < 0 || j >= s.Cols() {
		return nil, errors.Wrapf(internal.ErrDimensionMismatch,
			"column index %d exceeds dimension %d", j, s.Cols())
	}

	column := make([]float64, s.Rows())
	for i := range s {
		column[i] = s[i][j]
	}

	return column, nil
}

// Mean returns the per-coordinate sample mean.
func (s Samples) Mean() Vector {
	res := make(Vector, s.Cols())
	for j := range res {
		col, _ := s.Column(j)
		res[j] = stat.Mean(col, nil)
	}

	return res
}

// Variance returns the per-coordinate unbiased sample variance.
func (s Samples) Variance() Vector {
	res := make(Vector, s.Cols())
	for j := range res {
		col, _ := s.Column(j)
		res[j] = stat.Variance(col, nil)
	}

	return res
}

// Dense copies the samples into a gonum dense matrix with one row per
// sample. It returns nil for an empty Samples.
func (s Samples) Dense() *mat.Dense {
	rows, cols := s.Dims()
	if rows == 0 || cols == 0 {
		return nil
	}

	m := mat.NewDense(rows, cols, nil)
	for i, v := range s {
		m.SetRow(i, v)
	}

	return m
}
