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

package sample

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	dist distuv.Uniform
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values and
// the source of randomness.
func NewUniformRange(min, max float64, src rand.Source) *UniformRange {
	return &UniformRange{
		dist: distuv.Uniform{
			Min: min,
			Max: max,
			Src: src,
		},
	}
}

// NewUniform returns an instance of the UniformRange sampler
// for the interval [0, max).
func NewUniform(max float64, src rand.Source) *UniformRange {
	return NewUniformRange(0, max, src)
}

// NewCentered returns a UniformRange sampler for the interval
// [-width/2, width/2).
func NewCentered(width float64, src rand.Source) *UniformRange {
	return NewUniformRange(-width/2, width/2, src)
}

// Sample samples a random value from the interval [min, max).
func (u *UniformRange) Sample() float64 {
	return u.dist.Rand()
}
