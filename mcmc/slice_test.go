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

package mcmc_test

import (
	"math"
	"testing"

	"github.com/fentec-project/gomcmc/data"
	"github.com/fentec-project/gomcmc/mcmc"
	"github.com/fentec-project/gomcmc/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice_Length(t *testing.T) {
	var tests = []struct {
		name     string
		n        int
		burnIn   int
		thinning int
	}{
		{name: "defaults", n: 100, burnIn: 0, thinning: 1},
		{name: "burn-in", n: 100, burnIn: 37, thinning: 1},
		{name: "thinning", n: 100, burnIn: 0, thinning: 3},
		{name: "burn-in and thinning", n: 57, burnIn: 11, thinning: 4},
		{name: "no samples", n: 0, burnIn: 5, thinning: 2},
	}

	e := newStdNormalEngine()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			samples, err := e.Slice(sample.NewRand(31), normalInit(2), 1, test.n,
				mcmc.WithBurnIn(test.burnIn), mcmc.WithThinning(test.thinning))
			require.NoError(t, err)
			assert.Len(t, samples, test.n)
		})
	}
}

func TestSlice_KeepsEveryThinningIteration(t *testing.T) {
	// with thinning 1 and burn-in b the chain is a suffix of the
	// unthinned chain started from the same seed
	e := newStdNormalEngine()

	full, err := e.Slice(sample.NewRand(32), constInit(0), 1, 30)
	require.NoError(t, err)
	tail, err := e.Slice(sample.NewRand(32), constInit(0), 1, 20, mcmc.WithBurnIn(10))
	require.NoError(t, err)
	assert.Equal(t, full[10:], tail)

	thinned, err := e.Slice(sample.NewRand(32), constInit(0), 1, 10, mcmc.WithThinning(3))
	require.NoError(t, err)
	for i := range thinned {
		assert.Equal(t, full[3*i+2], thinned[i])
	}
}

// The sampler does not shrink its interval, so its stationary
// distribution is narrower than the target. Only the symmetry and the
// rough spread are checked.
func TestSlice_StandardNormal(t *testing.T) {
	e := newStdNormalEngine()

	samples, err := e.Slice(sample.NewRand(33), normalInit(1), 2, 20000, mcmc.WithBurnIn(200))
	require.NoError(t, err)
	checkMoments(t, samples, paramBounds{
		meanLow:  -0.15,
		meanHigh: 0.15,
		varLow:   0.5,
		varHigh:  1.1,
	})
}

func TestSlice_StaysInSupport(t *testing.T) {
	// uniform density on the unit square
	density := func(x data.Vector) float64 {
		for _, c := range x {
			if c < 0 || c > 1 {
				return 0
			}
		}
		return 1
	}
	e := mcmc.NewEngine(density, nil)

	samples, err := e.Slice(sample.NewRand(34), constInit(0.5, 0.5), 0.3, 2000)
	require.NoError(t, err)
	for _, s := range samples {
		assert.Greater(t, density(s), 0.0)
	}
}

func TestSlice_MaxAttempts(t *testing.T) {
	// positive only at the origin, no candidate can ever be accepted
	density := func(x data.Vector) float64 {
		if math.Abs(x[0]) < 1e-300 {
			return 1
		}
		return 0
	}
	e := mcmc.NewEngine(density, nil)

	samples, err := e.Slice(sample.NewRand(35), constInit(0), 1, 10, mcmc.WithMaxAttempts(50))
	assert.ErrorIs(t, err, mcmc.ErrSliceExhausted)
	assert.Nil(t, samples)
}

func TestSlice_Invalid(t *testing.T) {
	e := newStdNormalEngine()
	r := sample.NewRand(36)

	var tests = []struct {
		name  string
		width float64
		opts  []mcmc.SliceOption
	}{
		{name: "zero width", width: 0},
		{name: "NaN width", width: math.NaN()},
		{name: "negative burn-in", width: 1, opts: []mcmc.SliceOption{mcmc.WithBurnIn(-1)}},
		{name: "zero thinning", width: 1, opts: []mcmc.SliceOption{mcmc.WithThinning(0)}},
		{name: "negative attempts", width: 1, opts: []mcmc.SliceOption{mcmc.WithMaxAttempts(-3)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := e.Slice(r, constInit(0), test.width, 10, test.opts...)
			assert.ErrorIs(t, err, mcmc.ErrInvalidParameter)
		})
	}
}
