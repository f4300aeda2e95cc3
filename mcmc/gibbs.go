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

// Gibbs runs n sweeps of systematic-scan Gibbs sampling and returns n+1
// states, the initial state included.
//
// conditionals holds one function per coordinate. Within a sweep the
// coordinates are updated in index order and each conditional sees the
// coordinates already updated in the same sweep.
func (e *Engine) Gibbs(r *rand.Rand, conditionals []Conditional, init Initializer, n int) (data.Samples, error) {
	for i, c := range conditionals {
		if c == nil {
			return nil, errors.Wrapf(ErrInvalidParameter, "conditional of coordinate %d is nil", i)
		}
	}

	x, err := e.initialize(r, init, n)
	if err != nil {
		return nil, err
	}
	if len(conditionals) != len(x) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"got %d conditionals for a state of dimension %d", len(conditionals), len(x))
	}

	e.logStart("gibbs", n, len(x))

	samples := make(data.Samples, 0, n+1)
	samples = append(samples, x.Copy())

	for i := 0; i < n; i++ {
		for j, conditional := range conditionals {
			x[j] = conditional(r, x)
		}
		samples = append(samples, x.Copy())
	}

	e.logDone("gibbs", samples, nil)

	return samples, nil
}
