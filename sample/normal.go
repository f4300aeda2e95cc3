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

package sample

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal samples random values from the Normal (Gaussian)
// probability distribution with mean mu and standard deviation sigma.
type Normal struct {
	dist distuv.Normal
}

// NewNormal returns an instance of Normal sampler drawing its
// randomness from src.
func NewNormal(mu, sigma float64, src rand.Source) *Normal {
	return &Normal{
		dist: distuv.Normal{
			Mu:    mu,
			Sigma: sigma,
			Src:   src,
		},
	}
}

// NewStdNormal returns a Normal sampler with mean 0 and
// standard deviation 1.
func NewStdNormal(src rand.Source) *Normal {
	return NewNormal(0, 1, src)
}

// Sample returns a single value from the distribution.
func (n *Normal) Sample() float64 {
	return n.dist.Rand()
}
