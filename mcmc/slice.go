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
	"github.com/fentec-project/gomcmc/data"
	"github.com/fentec-project/gomcmc/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Slice runs the slice sampler and returns exactly n states.
//
// Each iteration draws a level u uniformly from [0, target(x)) and then
// draws candidates x + d, with every coordinate of d uniform in
// [-width/2, width/2), until target(x + d) > u. The sampling interval is
// never shrunk. The chain runs burn-in + n*thinning iterations, see
// WithBurnIn and WithThinning.
//
// The candidate search is unbounded unless WithMaxAttempts is given.
// When width is large compared to the region where the target is above
// the level, an iteration can take arbitrarily long.
func (e *Engine) Slice(r *rand.Rand, init Initializer, width float64, n int, opts ...SliceOption) (data.Samples, error) {
	if !(width > 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "width %v is not positive", width)
	}
	cfg, err := newSliceConfig(opts)
	if err != nil {
		return nil, err
	}

	x, err := e.initialize(r, init, n)
	if err != nil {
		return nil, err
	}
	fx, err := e.positiveDensity(x)
	if err != nil {
		return nil, err
	}

	e.logStart("slice", n, len(x))

	offset := sample.NewCentered(width, r)
	samples := make(data.Samples, 0, n)
	stats := &chainStats{}

	total := cfg.burnIn + n*cfg.thinning
	for i := 0; i < total; i++ {
		u := r.Float64() * fx
		x, fx, err = e.sliceStep(x, u, offset, cfg.maxAttempts, stats)
		if err != nil {
			return nil, errors.Wrapf(err, "iteration %d", i)
		}

		if i >= cfg.burnIn && (i-cfg.burnIn+1)%cfg.thinning == 0 {
			samples = append(samples, x.Copy())
		}
	}

	e.logDone("slice", samples, stats)

	return samples, nil
}

// sliceStep draws candidates around x until one lies above the level u.
func (e *Engine) sliceStep(x data.Vector, u float64, offset sample.Sampler, maxAttempts int,
	stats *chainStats) (data.Vector, float64, error) {
	for attempt := 1; maxAttempts == 0 || attempt <= maxAttempts; attempt++ {
		candidate := x.Add(data.NewRandomVector(len(x), offset))
		fc := e.density(candidate)
		if stats.record(fc > u) {
			return candidate, fc, nil
		}
	}

	return nil, 0, errors.Wrapf(ErrSliceExhausted, "no candidate above level %v in %d attempts", u, maxAttempts)
}
