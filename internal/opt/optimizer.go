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

// Package opt locates modes of target densities with population based
// optimizers. A mode is a good place to start a chain when the bulk of
// the mass is far from the origin.
package opt

import (
	"math"

	"github.com/fentec-project/gomcmc/data"
	"github.com/fentec-project/gomcmc/internal"
	"github.com/fentec-project/gomcmc/mcmc"
	"github.com/pkg/errors"
)

// Optimizer minimizes an objective within a box.
type Optimizer interface {
	// Run minimizes eval over the box [lower, upper] of dimension dim
	// and returns the best position together with its cost.
	Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64, error)
}

// FindMode searches the box [lower, upper]^dim for the point where
// density is largest by minimizing its negative logarithm.
func FindMode(o Optimizer, density mcmc.Density, lower, upper float64, dim int) (data.Vector, error) {
	if dim < 1 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "dimension %d", dim)
	}
	if !(lower < upper) {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "empty box [%v, %v]", lower, upper)
	}

	cost := func(x []float64) float64 {
		fx := density(data.NewVector(x))
		if !(fx > 0) {
			return math.MaxFloat64
		}
		return -math.Log(fx)
	}

	best, _, err := o.Run(cost, data.NewConstantVector(dim, lower), data.NewConstantVector(dim, upper), dim)
	if err != nil {
		return nil, errors.Wrap(err, "mode search failed")
	}

	mode := data.NewVector(best).Copy()
	if err := mode.CheckDims(dim); err != nil {
		return nil, err
	}
	if fx := density(mode); !(fx > 0) {
		return nil, errors.Wrapf(internal.ErrZeroDensity, "density at best point %v is %v", mode, fx)
	}

	return mode, nil
}
