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

// Package sample includes random sources and samplers for sampling
// random values from different probability distributions.
//
// Package sample provides the Sampler interface along with
// implementations backed by gonum distributions. Every sampler draws
// from an explicit rand.Source, so that a chain can be replayed
// exactly from its seed.
//
// KeyedSource is a deterministic pseudo-random source derived from
// the salsa20 keystream. Two sources created with the same key (or
// seed) produce identical streams.
package sample
