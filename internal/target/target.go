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

// Package target holds closed-form target distributions used to
// exercise the samplers: their densities, log-density gradients and
// exact conditional distributions.
package target

import (
	"math"

	"github.com/fentec-project/gomcmc/data"
	"github.com/fentec-project/gomcmc/mcmc"
	"github.com/fentec-project/gomcmc/sample"
	"golang.org/x/exp/rand"
)

// StdNormal is the standard multivariate normal distribution.
type StdNormal struct{}

// Density returns exp(-|x|^2/2).
func (StdNormal) Density(x data.Vector) float64 {
	return math.Exp(-x.SquaredNorm() / 2)
}

// Gradient returns the gradient of the log density, -x.
func (StdNormal) Gradient(x data.Vector) data.Vector {
	return x.MulScalar(-1)
}

// Conditionals returns dim independent standard normal conditionals.
func (StdNormal) Conditionals(dim int) []mcmc.Conditional {
	c := make([]mcmc.Conditional, dim)
	for i := range c {
		c[i] = func(r *rand.Rand, _ data.Vector) float64 {
			return r.NormFloat64()
		}
	}

	return c
}

// Bivariate is the bivariate normal distribution with zero means, unit
// variances and correlation Rho, |Rho| < 1.
type Bivariate struct {
	Rho float64
}

// Density returns exp(-(x0^2 - 2 rho x0 x1 + x1^2) / (2 (1 - rho^2))).
func (b Bivariate) Density(x data.Vector) float64 {
	return math.Exp(b.logDensity(x))
}

func (b Bivariate) logDensity(x data.Vector) float64 {
	q := x[0]*x[0] - 2*b.Rho*x[0]*x[1] + x[1]*x[1]
	return -q / (2 * (1 - b.Rho*b.Rho))
}

// Gradient returns the gradient of the log density.
func (b Bivariate) Gradient(x data.Vector) data.Vector {
	s := 1 - b.Rho*b.Rho
	return data.Vector{
		-(x[0] - b.Rho*x[1]) / s,
		-(x[1] - b.Rho*x[0]) / s,
	}
}

// Conditionals returns the exact conditionals
// x_i | x_j ~ N(rho x_j, 1 - rho^2).
func (b Bivariate) Conditionals() []mcmc.Conditional {
	sigma := math.Sqrt(1 - b.Rho*b.Rho)
	conditional := func(other int) mcmc.Conditional {
		return func(r *rand.Rand, x data.Vector) float64 {
			return sample.NewNormal(b.Rho*x[other], sigma, r).Sample()
		}
	}

	return []mcmc.Conditional{conditional(1), conditional(0)}
}
