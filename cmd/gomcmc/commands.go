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
	"io"

	"github.com/fentec-project/gomcmc/data"
	"github.com/fentec-project/gomcmc/mcmc"
	"github.com/fentec-project/gomcmc/sample"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var version = "0.1.0"

func newMHCmd(f *chainFlags) *cobra.Command {
	var sd float64

	cmd := &cobra.Command{
		Use:   "mh",
		Short: "Random walk Metropolis-Hastings with a Gaussian proposal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(sd > 0) {
				return fmt.Errorf("proposal standard deviation must be positive, got %v", sd)
			}
			return f.run("metropolis-hastings", func(e *mcmc.Engine, r *rand.Rand, init mcmc.Initializer, _ *problem) (data.Samples, error) {
				return e.MetropolisHastings(r, init, gaussianProposal(sd), f.samples)
			})
		},
	}
	cmd.Flags().Float64Var(&sd, "proposal-sd", 1, "Standard deviation of the proposal")

	return cmd
}

func newGibbsCmd(f *chainFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gibbs",
		Short: "Systematic scan Gibbs sampling from exact conditionals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run("gibbs", func(e *mcmc.Engine, r *rand.Rand, init mcmc.Initializer, p *problem) (data.Samples, error) {
				return e.Gibbs(r, p.conditionals, init, f.samples)
			})
		},
	}
}

func newSliceCmd(f *chainFlags) *cobra.Command {
	var (
		width       float64
		burnIn      int
		thinning    int
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Slice sampling with a fixed width hyperrectangle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run("slice", func(e *mcmc.Engine, r *rand.Rand, init mcmc.Initializer, _ *problem) (data.Samples, error) {
				return e.Slice(r, init, width, f.samples,
					mcmc.WithBurnIn(burnIn),
					mcmc.WithThinning(thinning),
					mcmc.WithMaxAttempts(maxAttempts),
				)
			})
		},
	}
	cmd.Flags().Float64Var(&width, "width", 1, "Side length of the candidate hyperrectangle")
	cmd.Flags().IntVar(&burnIn, "burn-in", 0, "Iterations discarded before sampling")
	cmd.Flags().IntVar(&thinning, "thinning", 1, "Keep every n-th iteration")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "Candidates per iteration before giving up, 0 for no limit")

	return cmd
}

func newMALACmd(f *chainFlags) *cobra.Command {
	var stepSize float64

	cmd := &cobra.Command{
		Use:   "mala",
		Short: "Metropolis-adjusted Langevin algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run("mala", func(e *mcmc.Engine, r *rand.Rand, init mcmc.Initializer, _ *problem) (data.Samples, error) {
				return e.MALA(r, init, stepSize, f.samples)
			})
		},
	}
	cmd.Flags().Float64Var(&stepSize, "step-size", 0.5, "Langevin step size")

	return cmd
}

func newHMCCmd(f *chainFlags) *cobra.Command {
	var (
		stepSize float64
		steps    int
	)

	cmd := &cobra.Command{
		Use:   "hmc",
		Short: "Hamiltonian Monte Carlo with a leapfrog integrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run("hmc", func(e *mcmc.Engine, r *rand.Rand, init mcmc.Initializer, _ *problem) (data.Samples, error) {
				return e.HMC(r, init, stepSize, steps, f.samples)
			})
		},
	}
	cmd.Flags().Float64Var(&stepSize, "step-size", 0.2, "Leapfrog step size")
	cmd.Flags().IntVar(&steps, "leapfrog-steps", 10, "Leapfrog steps per iteration")

	return cmd
}

func newMWGCmd(f *chainFlags) *cobra.Command {
	var sd float64

	cmd := &cobra.Command{
		Use:   "mwg",
		Short: "Metropolis-within-Gibbs",
		Long: `Updates the first coordinate with a Gaussian random walk step and every
other coordinate from its exact conditional.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(sd > 0) {
				return fmt.Errorf("proposal standard deviation must be positive, got %v", sd)
			}
			return f.run("metropolis-within-gibbs", func(e *mcmc.Engine, r *rand.Rand, init mcmc.Initializer, p *problem) (data.Samples, error) {
				conditionals := make([]mcmc.Conditional, p.dim)
				copy(conditionals[1:], p.conditionals[1:])
				proposals := make([]mcmc.CoordinateProposal, p.dim)
				proposals[0] = func(r *rand.Rand, x data.Vector) float64 {
					return x[0] + sd*r.NormFloat64()
				}
				return e.MetropolisWithinGibbs(r, init, conditionals, proposals, f.samples)
			})
		},
	}
	cmd.Flags().Float64Var(&sd, "proposal-sd", 1, "Standard deviation of the first coordinate proposal")

	return cmd
}

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "gomcmc version %s\n", version)
		},
	}
}

func gaussianProposal(sd float64) mcmc.Proposal {
	return func(r *rand.Rand, x data.Vector) data.Vector {
		return x.Add(data.NewRandomVector(len(x), sample.NewNormal(0, sd, r)))
	}
}
