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

package opt

import (
	"math/rand"

	"github.com/cwbudde/mayfly"
	"github.com/fentec-project/gomcmc/internal"
	"github.com/pkg/errors"
)

// mayfly sizes its female and offspring populations to 20 by default
// and indexes the male population with them.
const minPopSize = 20

// MayflyAdapter runs the mayfly algorithm behind the Optimizer interface.
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly returns a mayfly optimizer. Run fails for populations
// smaller than minPopSize.
func NewMayfly(maxIters, popSize int, seed int64) *MayflyAdapter {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

// Run executes mayfly. The library takes scalar bounds, so the box is
// given by lower[0] and upper[0].
func (m *MayflyAdapter) Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64, error) {
	if len(lower) == 0 || len(upper) == 0 {
		return nil, 0, errors.Wrap(internal.ErrInvalidParameter, "missing bounds")
	}
	if m.popSize < minPopSize {
		return nil, 0, errors.Wrapf(internal.ErrInvalidParameter,
			"population %d is smaller than %d", m.popSize, minPopSize)
	}

	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = eval
	config.ProblemSize = dim
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize
	config.LowerBound = lower[0]
	config.UpperBound = upper[0]
	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		return nil, 0, errors.Wrap(err, "mayfly")
	}

	return result.GlobalBest.Position, result.GlobalBest.Cost, nil
}
