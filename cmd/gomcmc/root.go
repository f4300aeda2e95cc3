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
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// chainFlags holds the flags shared by every sampling command.
type chainFlags struct {
	logLevel string
	seed     uint64
	samples  int
	dim      int
	target   string
	rho      float64
	init     string
	header   bool

	out    io.Writer
	logger *slog.Logger
}

func newLogger(w io.Writer, logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	f := &chainFlags{out: out}

	cmd := &cobra.Command{
		Use:   "gomcmc",
		Short: "Draw Markov chain Monte Carlo samples from built-in targets",
		Long: `gomcmc runs Metropolis-Hastings, Gibbs, slice, MALA, HMC and
Metropolis-within-Gibbs chains on a standard normal or a correlated
bivariate normal target and writes the chain to stdout as CSV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			f.logger = newLogger(errOut, f.logLevel)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.Uint64Var(&f.seed, "seed", 42, "Random seed")
	flags.IntVar(&f.samples, "samples", 1000, "Number of samples to draw")
	flags.IntVar(&f.dim, "dim", 1, "Dimension of the normal target")
	flags.StringVar(&f.target, "target", "normal", "Target distribution: normal, bivariate")
	flags.Float64Var(&f.rho, "rho", 0.5, "Correlation of the bivariate target")
	flags.StringVar(&f.init, "init", "zero", "Initial state: zero, random, mode")
	flags.BoolVar(&f.header, "header", false, "Write a CSV header row")

	cmd.AddCommand(
		newMHCmd(f),
		newGibbsCmd(f),
		newSliceCmd(f),
		newMALACmd(f),
		newHMCCmd(f),
		newMWGCmd(f),
		newVersionCmd(out),
	)

	return cmd
}
