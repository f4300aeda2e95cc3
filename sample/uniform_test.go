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

package sample_test

import (
	"testing"

	"github.com/fentec-project/gomcmc/sample"
	"github.com/stretchr/testify/assert"
)

func TestUniformRange(t *testing.T) {
	var tests = []struct {
		name    string
		sampler sample.Sampler
		min     float64
		max     float64
		expect  paramBounds
	}{
		{
			name:    "[0, 1)",
			sampler: sample.NewUniform(1, sample.NewSource(7)),
			min:     0,
			max:     1,
			expect: paramBounds{
				meanLow:  0.48,
				meanHigh: 0.52,
				varLow:   0.08,
				varHigh:  0.087,
			},
		},
		{
			name:    "centered width 4",
			sampler: sample.NewCentered(4, sample.NewSource(8)),
			min:     -2,
			max:     2,
			expect: paramBounds{
				meanLow:  -0.05,
				meanHigh: 0.05,
				varLow:   1.28,
				varHigh:  1.39,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				v := test.sampler.Sample()
				assert.GreaterOrEqual(t, v, test.min)
				assert.Less(t, v, test.max)
			}
			testSampler(t, test.sampler, test.expect)
		})
	}
}
