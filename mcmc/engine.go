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
	"log/slog"

	"github.com/fentec-project/gomcmc/data"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Density is an unnormalized target probability density. It must be
// non-negative everywhere it is called.
type Density func(x data.Vector) float64

// Gradient returns the gradient of the logarithm of the target density
// at x. The result must have the same length as x.
type Gradient func(x data.Vector) data.Vector

// Initializer returns the initial state of a chain. It is called
// exactly once per run.
type Initializer func(r *rand.Rand) data.Vector

// Proposal returns a candidate state given the current state x.
// It must return a new vector and must not modify x.
type Proposal func(r *rand.Rand, x data.Vector) data.Vector

// Conditional draws a new value of a single coordinate given the full
// current state x.
type Conditional func(r *rand.Rand, x data.Vector) float64

// CoordinateProposal proposes a new value of a single coordinate given
// the full current state x. The proposal is assumed to be symmetric.
type CoordinateProposal func(r *rand.Rand, x data.Vector) float64

// Engine runs MCMC samplers against a fixed target density.
type Engine struct {
	density  Density
	gradient Gradient
	logger   *slog.Logger
}

// NewEngine returns an Engine for the target density. The gradient of
// the log density may be nil, in which case MALA and HMC fail with
// ErrNoGradient.
func NewEngine(density Density, gradient Gradient, opts ...Option) *Engine {
	e := &Engine{
		density:  density,
		gradient: gradient,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// initialize validates the sample count and draws the initial state.
func (e *Engine) initialize(r *rand.Rand, init Initializer, n int) (data.Vector, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "number of samples %d is negative", n)
	}
	if init == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "initializer is nil")
	}

	x := init(r)
	if len(x) == 0 {
		return nil, errors.Wrap(ErrDimensionMismatch, "initial state is empty")
	}

	return x.Copy(), nil
}

// positiveDensity evaluates the target at x. The density of the current
// state of a chain must be positive, since samplers divide by it or take
// its logarithm.
func (e *Engine) positiveDensity(x data.Vector) (float64, error) {
	if e.density == nil {
		return 0, errors.Wrap(ErrInvalidParameter, "target density is nil")
	}

	fx := e.density(x)
	if !(fx > 0) {
		return 0, errors.Wrapf(ErrZeroDensity, "density at %v is %v", x, fx)
	}

	return fx, nil
}

func (e *Engine) gradientAt(x data.Vector) (data.Vector, error) {
	g := e.gradient(x)
	if err := g.CheckDims(len(x)); err != nil {
		return nil, errors.Wrap(err, "gradient")
	}
	if !g.IsFinite() {
		return nil, errors.Wrapf(ErrInvalidParameter, "gradient at %v is not finite", x)
	}

	return g, nil
}

// accept decides a Metropolis acceptance test. The ratio is not clamped
// to [0, 1]: a draw from [0, 1) is always below a ratio >= 1, and never
// below a zero, negative or NaN ratio.
func accept(r *rand.Rand, ratio float64) bool {
	return r.Float64() < ratio
}

// chainStats counts proposals of a run for logging.
type chainStats struct {
	proposed int
	accepted int
}

func (c *chainStats) record(accepted bool) bool {
	c.proposed++
	if accepted {
		c.accepted++
	}

	return accepted
}

func (c *chainStats) rate() float64 {
	if c.proposed == 0 {
		return 0
	}

	return float64(c.accepted) / float64(c.proposed)
}

func (e *Engine) logStart(algorithm string, n, dim int) {
	e.logger.Debug("starting chain", "algorithm", algorithm, "samples", n, "dim", dim)
}

func (e *Engine) logDone(algorithm string, samples data.Samples, stats *chainStats) {
	if stats == nil {
		e.logger.Debug("chain finished", "algorithm", algorithm, "samples", len(samples))
		return
	}
	e.logger.Debug("chain finished",
		"algorithm", algorithm,
		"samples", len(samples),
		"proposed", stats.proposed,
		"accepted", stats.accepted,
		"acceptance_rate", stats.rate(),
	)
}
