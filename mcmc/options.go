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
	"log/slog"

	"github.com/pkg/errors"
)

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the logger receiving debug records about each run.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// SliceOption customizes a single slice sampling run.
type SliceOption func(*sliceConfig)

type sliceConfig struct {
	burnIn      int
	thinning    int
	maxAttempts int
}

// WithBurnIn discards the first b iterations of the chain.
func WithBurnIn(b int) SliceOption {
	return func(c *sliceConfig) {
		c.burnIn = b
	}
}

// WithThinning keeps every t-th iteration after burn-in.
func WithThinning(t int) SliceOption {
	return func(c *sliceConfig) {
		c.thinning = t
	}
}

// WithMaxAttempts bounds the number of candidates drawn per iteration.
// Zero, the default, leaves the search unbounded.
func WithMaxAttempts(m int) SliceOption {
	return func(c *sliceConfig) {
		c.maxAttempts = m
	}
}

func newSliceConfig(opts []SliceOption) (*sliceConfig, error) {
	c := &sliceConfig{thinning: 1}
	for _, opt := range opts {
		opt(c)
	}

	if c.burnIn < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "burn-in %d is negative", c.burnIn)
	}
	if c.thinning < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "thinning %d is smaller than 1", c.thinning)
	}
	if c.maxAttempts < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "maximum attempts %d is negative", c.maxAttempts)
	}

	return c, nil
}
