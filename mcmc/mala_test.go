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
	"github.com/fentec-project/gomcmc/internal/target"
	"github.com/fentec-project/gomcmc/mcmc"
	"github.com/fentec-project/gomcmc/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMALA(t *testing.T) {
	var tests = []struct {
		name     string
		dim      int
		stepSize float64
	}{
		{name: "1-D, eps=0.5", dim: 1, stepSize: 0.5},
		{name: "2-D, eps=0.5", dim: 2, stepSize: 0.5},
		{name: "2-D, eps=1.2", dim: 2, stepSize: 1.2},
	}

	e := newStdNormalEngine()
	for i, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			samples, err := e.MALA(sample.NewRand(uint64(40+i)), normalInit(test.dim), test.stepSize, 20000)
			require.NoError(t, err)
			assert.Len(t, samples, 20001)
			checkMoments(t, samples, stdNormalBounds)
		})
	}
}

func TestMALA_Bivariate(t *testing.T) {
	b := target.Bivariate{Rho: 0.6}
	e := mcmc.NewEngine(b.Density, b.Gradient)

	samples, err := e.MALA(sample.NewRand(45), normalInit(2), 0.4, 30000)
	require.NoError(t, err)
	checkMoments(t, samples, stdNormalBounds)
}

func TestMALA_NoGradient(t *testing.T) {
	counter := &countingDensity{density: target.StdNormal{}.Density}
	e := mcmc.NewEngine(counter.Density, nil)

	initCalls := 0
	init := func(*rand.Rand) data.Vector {
		initCalls++
		return data.Vector{0}
	}

	r := sample.NewRand(46)
	samples, err := e.MALA(r, init, 0.1, 100)
	assert.ErrorIs(t, err, mcmc.ErrNoGradient)
	assert.Nil(t, samples)
	assert.Equal(t, 0, counter.calls, "density should not be evaluated")
	assert.Equal(t, 0, initCalls, "initializer should not be called")
	assert.Equal(t, sample.NewRand(46).Uint64(), r.Uint64(), "no randomness should be consumed")
}

func TestMALA_RejectionKeepsState(t *testing.T) {
	// huge steps land where the density underflows to zero
	e := newStdNormalEngine()
	init := data.Vector{0.25, -0.5}

	samples, err := e.MALA(sample.NewRand(47), constInit(init...), 1e6, 200)
	require.NoError(t, err)
	for i := range samples {
		assert.Equal(t, init, samples[i], "rejected proposal changed the state at sample %d", i)
	}
}

func TestMALA_Invalid(t *testing.T) {
	e := newStdNormalEngine()
	r := sample.NewRand(48)

	_, err := e.MALA(r, constInit(0), 0, 10)
	assert.ErrorIs(t, err, mcmc.ErrInvalidParameter)

	_, err = e.MALA(r, constInit(0), -0.5, 10)
	assert.ErrorIs(t, err, mcmc.ErrInvalidParameter)

	badGradient := func(x data.Vector) data.Vector {
		return data.Vector{0, 0, 0}
	}
	_, err = mcmc.NewEngine(target.StdNormal{}.Density, badGradient).MALA(r, constInit(0, 0), 0.1, 10)
	assert.ErrorIs(t, err, mcmc.ErrDimensionMismatch)

	nonFinite := func(x data.Vector) data.Vector {
		return data.Vector{math.NaN()}
	}
	_, err = mcmc.NewEngine(target.StdNormal{}.Density, nonFinite).MALA(r, constInit(0), 0.1, 10)
	assert.ErrorIs(t, err, mcmc.ErrInvalidParameter)
}
