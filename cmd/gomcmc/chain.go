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

package main

import (
	"fmt"

	"github.com/fentec-project/gomcmc/data"
	"github.com/fentec-project/gomcmc/internal/opt"
	"github.com/fentec-project/gomcmc/internal/target"
	"github.com/fentec-project/gomcmc/mcmc"
	"github.com/fentec-project/gomcmc/sample"
	"golang.org/x/exp/rand"
)

// Box searched by --init mode.
const (
	modeLower = -10
	modeUpper = 10
	modeIters = 100
	modePop   = 20
)

// problem is a target resolved from the command line flags.
type problem struct {
	dim          int
	density      mcmc.Density
	gradient     mcmc.Gradient
	conditionals []mcmc.Conditional
}

func (f *chainFlags) problem() (*problem, error) {
	switch f.target {
	case "normal":
		if f.dim < 1 {
			return nil, fmt.Errorf("dimension must be positive, got %d", f.dim)
		}
		t := target.StdNormal{}
		return &problem{
			dim:          f.dim,
			density:      t.Density,
			gradient:     t.Gradient,
			conditionals: t.Conditionals(f.dim),
		}, nil
	case "bivariate":
		if !(f.rho > -1 && f.rho < 1) {
			return nil, fmt.Errorf("correlation must lie in (-1, 1), got %v", f.rho)
		}
		t := target.Bivariate{Rho: f.rho}
		return &problem{
			dim:          2,
			density:      t.Density,
			gradient:     t.Gradient,
			conditionals: t.Conditionals(),
		}, nil
	default:
		return nil, fmt.Errorf("unknown target: %s", f.target)
	}
}

func (f *chainFlags) initializer(p *problem) (mcmc.Initializer, error) {
	switch f.init {
	case "zero":
		return func(*rand.Rand) data.Vector {
			return data.NewConstantVector(p.dim, 0)
		}, nil
	case "random":
		return func(r *rand.Rand) data.Vector {
			return data.NewRandomVector(p.dim, sample.NewStdNormal(r))
		}, nil
	case "mode":
		mode, err := opt.FindMode(opt.NewMayfly(modeIters, modePop, int64(f.seed)), p.density, modeLower, modeUpper, p.dim)
		if err != nil {
			return nil, fmt.Errorf("failed to find mode: %w", err)
		}
		f.logger.Info("Found mode", "mode", []float64(mode))
		return func(*rand.Rand) data.Vector {
			return mode.Copy()
		}, nil
	default:
		return nil, fmt.Errorf("unknown init: %s", f.init)
	}
}

// sampler runs one chain on a resolved problem.
type sampler func(e *mcmc.Engine, r *rand.Rand, init mcmc.Initializer, p *problem) (data.Samples, error)

func (f *chainFlags) run(algorithm string, s sampler) error {
	p, err := f.problem()
	if err != nil {
		return err
	}
	init, err := f.initializer(p)
	if err != nil {
		return err
	}

	f.logger.Info("Starting chain", "algorithm", algorithm, "target", f.target, "dim", p.dim,
		"samples", f.samples, "seed", f.seed)

	e := mcmc.NewEngine(p.density, p.gradient, mcmc.WithLogger(f.logger))
	samples, err := s(e, sample.NewRand(f.seed), init, p)
	if err != nil {
		return fmt.Errorf("%s failed: %w", algorithm, err)
	}

	if err := writeCSV(f.out, samples, f.header); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}

	f.logger.Info("Chain complete",
		"algorithm", algorithm,
		"rows", samples.Rows(),
		"mean", samples.Mean(),
		"variance", samples.Variance(),
	)

	return nil
}
