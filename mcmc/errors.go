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

import "github.com/fentec-project/gomcmc/internal"

// Errors returned by the samplers, wrapped with the context in which
// they occurred. Use errors.Is to check for them.
var (
	// ErrNoGradient is returned by gradient based samplers (MALA, HMC)
	// when the engine was created without a gradient.
	ErrNoGradient = internal.ErrNoGradient

	// ErrDimensionMismatch is returned when a proposal, gradient or list
	// of per-coordinate functions does not match the dimension of the
	// initial state.
	ErrDimensionMismatch = internal.ErrDimensionMismatch

	// ErrZeroDensity is returned when the density at the current state is
	// not positive.
	ErrZeroDensity = internal.ErrZeroDensity

	// ErrInvalidParameter is returned for a negative sample count, a
	// non-positive width or step size, a nil callback or a gradient
	// that is not finite.
	ErrInvalidParameter = internal.ErrInvalidParameter

	// ErrSliceExhausted is returned by Slice when WithMaxAttempts is set
	// and no candidate is found inside the slice.
	ErrSliceExhausted = internal.ErrSliceExhausted
)
