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

// Package mcmc includes Markov chain Monte Carlo samplers drawing
// approximate samples from an unnormalized target density over a
// fixed-dimension real vector space.
//
// An Engine is configured once with the target density and, optionally,
// the gradient of its logarithm. It exposes one method per algorithm:
// Metropolis-Hastings, Gibbs, slice sampling, the Metropolis-adjusted
// Langevin algorithm (MALA), Hamiltonian Monte Carlo (HMC) and
// Metropolis-within-Gibbs. The methods are independent of each other and
// keep no state between calls.
//
// Every method takes an explicit *rand.Rand. All randomness of a run,
// including the randomness used by caller supplied initializers,
// proposals and conditionals, is drawn from it, so a run seeded with
// sample.NewRand is fully reproducible.
//
// The returned data.Samples hold one state per iteration. Rejected
// proposals repeat the previous state, so that the length of a chain
// does not depend on its acceptance rate. Each stored state is an
// independent copy.
package mcmc
