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

// HMC runs n iterations of Hamiltonian Monte Carlo and returns n+1
// states, the initial state included. It fails with ErrNoGradient when
// the engine has no gradient.
//
// Each iteration draws a fresh standard normal momentum, integrates the
// Hamiltonian dynamics with steps leapfrog steps of size stepSize, and
// accepts the end position with probability min(1, exp(H0 - H1)) where
// H = -log target(q) + |p|^2/2. With zero steps the position never moves.
func (e *Engine) HMC(r *rand.Rand, init Initializer, stepSize float64, steps, n int) (data.Samples, error) {
	if e.gradient == nil {
		return nil, errors.Wrap(ErrNoGradient, "HMC requires the gradient of the log density")
	}
	if !(stepSize > 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "step size %v is not positive", stepSize)
	}
	if steps < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "number of leapfrog steps %d is negative", steps)
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
	e.logStart("hmc", n, dim)

	momentum := sample.NewStdNormal(r)
	samples := make(data.Samples, 0, n+1)
	samples = append(samples, x.Copy())
	stats := &chainStats{}

	for i := 0; i < n; i++ {
		p0 := data.NewRandomVector(dim, momentum)
		q, p, gq, err := e.leapfrog(x, p0, gx, stepSize, steps)
		if err != nil {
			return nil, errors.Wrapf(err, "iteration %d", i)
		}

		fq := e.density(q)
		if stats.record(accept(r, math.Exp(hamiltonian(fx, p0)-hamiltonian(fq, p)))) {
			x, fx, gx = q, fq, gq
		}
		samples = append(samples, x.Copy())
	}

	e.logDone("hmc", samples, stats)

	return samples, nil
}

// leapfrog integrates steps leapfrog steps from (q, p). grad is the
// gradient of the log density at q; the gradient at the end position is
// returned along with it. q and p are not modified.
func (e *Engine) leapfrog(q, p, grad data.Vector, eps float64, steps int) (data.Vector, data.Vector, data.Vector, error) {
	for l := 0; l < steps; l++ {
		p = p.AddScaled(eps/2, grad)
		q = q.AddScaled(eps, p)

		g, err := e.gradientAt(q)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "leapfrog step %d", l)
		}
		grad = g
		p = p.AddScaled(eps/2, grad)
	}

	return q, p, grad, nil
}

// hamiltonian returns the potential -log(density) plus the kinetic
// energy of momentum p.
func hamiltonian(density float64, p data.Vector) float64 {
	return -math.Log(density) + p.SquaredNorm()/2
}
