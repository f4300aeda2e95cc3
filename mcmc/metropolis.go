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
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// MetropolisHastings runs n iterations of the Metropolis-Hastings
// algorithm with a symmetric proposal and returns n+1 states, the
// initial state included.
//
// A candidate is accepted when a uniform draw from [0, 1) is smaller
// than target(candidate) / target(current).
func (e *Engine) MetropolisHastings(r *rand.Rand, init Initializer, proposal Proposal, n int) (data.Samples, error) {
	if proposal == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "proposal is nil")
	}

	x, err := e.initialize(r, init, n)
	if err != nil {
		return nil, err
	}
	fx, err := e.positiveDensity(x)
	if err != nil {
		return nil, err
	}

	dim := len(x)
	e.logStart("metropolis-hastings", n, dim)

	samples := make(data.Samples, 0, n+1)
	samples = append(samples, x.Copy())
	stats := &chainStats{}

	for i := 0; i < n; i++ {
		candidate := proposal(r, x)
		if err := candidate.CheckDims(dim); err != nil {
			return nil, errors.Wrapf(err, "proposal at iteration %d", i)
		}

		fc := e.density(candidate)
		if stats.record(accept(r, fc/fx)) {
			x, fx = candidate.Copy(), fc
		}
		samples = append(samples, x.Copy())
	}

	e.logDone("metropolis-hastings", samples, stats)

	return samples, nil
}
