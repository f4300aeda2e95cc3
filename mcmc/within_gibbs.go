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

// MetropolisWithinGibbs runs n sweeps over the coordinates and returns
// n+1 states, the initial state included.
//
// conditionals and proposals hold one entry per coordinate. Coordinate i
// is updated by a single Metropolis-Hastings step when proposals[i] is
// set: the candidate is the current state with coordinate i replaced by
// the proposed value, accepted against the full target density.
// Otherwise it is drawn exactly from conditionals[i]. A coordinate with
// neither is an error.
func (e *Engine) MetropolisWithinGibbs(r *rand.Rand, init Initializer, conditionals []Conditional,
	proposals []CoordinateProposal, n int) (data.Samples, error) {
	if len(conditionals) != len(proposals) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"got %d conditionals and %d proposals", len(conditionals), len(proposals))
	}
	useDensity := false
	for i := range proposals {
		if proposals[i] == nil && conditionals[i] == nil {
			return nil, errors.Wrapf(ErrInvalidParameter, "coordinate %d has neither a conditional nor a proposal", i)
		}
		useDensity = useDensity || proposals[i] != nil
	}

	x, err := e.initialize(r, init, n)
	if err != nil {
		return nil, err
	}
	if len(proposals) != len(x) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"got %d coordinate updates for a state of dimension %d", len(proposals), len(x))
	}

	var fx float64
	if useDensity {
		if fx, err = e.positiveDensity(x); err != nil {
			return nil, err
		}
	}

	e.logStart("metropolis-within-gibbs", n, len(x))

	samples := make(data.Samples, 0, n+1)
	samples = append(samples, x.Copy())
	stats := &chainStats{}

	for i := 0; i < n; i++ {
		for j := range x {
			if propose := proposals[j]; propose != nil {
				candidate := x.With(j, propose(r, x))
				fc := e.density(candidate)
				if stats.record(accept(r, fc/fx)) {
					x, fx = candidate, fc
				}
				continue
			}

			x[j] = conditionals[j](r, x)
			if useDensity {
				if fx, err = e.positiveDensity(x); err != nil {
					return nil, errors.Wrapf(err, "coordinate %d at iteration %d", j, i)
				}
			}
		}
		samples = append(samples, x.Copy())
	}

	e.logDone("metropolis-within-gibbs", samples, stats)

	return samples, nil
}
