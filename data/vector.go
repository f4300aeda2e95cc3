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
	"math"

	"github.com/fentec-project/gomcmc/internal"
	"github.com/fentec-project/gomcmc/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Vector wraps a slice of float64 elements. It represents a single
// state of a Markov chain.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
func NewRandomVector(len int, sampler sample.Sampler) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = sampler.Sample()
	}

	return NewVector(vec)
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// With returns a copy of v with the i-th coordinate set to x.
func (v Vector) With(i int, x float64) Vector {
	res := v.Copy()
	res[i] = x

	return res
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	return floats.ScaleTo(make(Vector, len(v)), x, v)
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
// Vectors are expected to have the same length.
func (v Vector) Add(other Vector) Vector {
	return floats.AddTo(make(Vector, len(v)), v, other)
}

// AddScaled returns v + alpha*other in a new Vector.
func (v Vector) AddScaled(alpha float64, other Vector) Vector {
	return floats.AddScaledTo(make(Vector, len(v)), v, alpha, other)
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Sub(other Vector) Vector {
	return floats.SubTo(make(Vector, len(v)), v, other)
}

// SquaredNorm returns the sum of squares of the elements of v.
func (v Vector) SquaredNorm() float64 {
	return floats.Dot(v, v)
}

// CheckDims checks whether v has exactly dim elements.
func (v Vector) CheckDims(dim int) error {
	if len(v) != dim {
		return errors.Wrapf(internal.ErrDimensionMismatch,
			"vector has %d elements, expected %d", len(v), dim)
	}

	return nil
}

// IsFinite reports whether no element of v is NaN or infinite.
func (v Vector) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}
