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

package mcmc

import (
	"math"

	"github.com/fentec-project/gomcmc/data"
	"github.com/fentec-project/gomcmc/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// MALA runs n iterations of the Metropolis-adjusted Langevin algorithm
// and returns n+1 states, the initial state included. It fails with
// ErrNoGradient, before touching r or the target, when the engine has
// no gradient.
//
// The candidate is x' = x + (eps/2)*grad(x) + sqrt(eps)*xi with xi
// standard normal, and it is accepted when a uniform draw is below
//
//	target(x') q(x | x') / (target(x) q(x' | x))
//
// where q(b | a) is the Gaussian density of the Langevin step from a,
// evaluated with the gradient at a.
func (e *Engine) MALA(r *rand.Rand, init Initializer, stepSize float64, n int) (data.Samples, error) {
	if e.gradient == nil {
		return nil, errors.Wrap(ErrNoGradient, "MALA requires the gradient of the log density")
	}
	if !(stepSize > 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "step size %v is not positive", stepSize)
	}

	x, err := e.initialize(r, init, n)
	if err != nil {
		return nil, err
	}
	fx, err := e.positiveDensity(x)
	if err != nil {
		return nil, err
	}
	gx, err := e.gradientAt(x)
	if err != nil {
		return nil, err
	}

	dim := len(x)
	e.logStart("mala", n, dim)

	noise := sample.NewStdNormal(r)
	sqrtStep := math.Sqrt(stepSize)
	samples := make(data.Samples, 0, n+1)
	samples = append(samples, x.Copy())
	stats := &chainStats{}

	for i := 0; i < n; i++ {
		xi := data.NewRandomVector(dim, noise)
		candidate := langevinMean(x, gx, stepSize).AddScaled(sqrtStep, xi)

		fc := e.density(candidate)
		gc, err := e.gradientAt(candidate)
		if err != nil {
			return nil, errors.Wrapf(err, "iteration %d", i)
		}

		logForward := langevinLogKernel(candidate, x, gx, stepSize)
		logReverse := langevinLogKernel(x, candidate, gc, stepSize)
		ratio := fc / fx * math.Exp(logReverse-logForward)

		if stats.record(accept(r, ratio)) {
			x, fx, gx = candidate, fc, gc
		}
		samples = append(samples, x.Copy())
	}

	e.logDone("mala", samples, stats)

	return samples, nil
}

// langevinMean returns the mean x + (eps/2)*grad of the Langevin step.
func langevinMean(x, grad data.Vector, eps float64) data.Vector {
	return x.AddScaled(eps/2, grad)
}

// langevinLogKernel returns log q(to | from) up to an additive constant.
func langevinLogKernel(to, from, gradFrom data.Vector, eps float64) float64 {
	return -to.Sub(langevinMean(from, gradFrom, eps)).SquaredNorm() / (2 * eps)
}
