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
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) ([][]string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	cmd.SetOut(&errOut)
	cmd.SetErr(&errOut)

	if err := cmd.Execute(); err != nil {
		return nil, errOut.String(), err
	}

	records, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)

	return records, errOut.String(), nil
}

func TestCommands(t *testing.T) {
	var tests = []struct {
		name string
		args []string
		rows int
		cols int
	}{
		{name: "mh", args: []string{"mh", "--samples", "50", "--dim", "3"}, rows: 51, cols: 3},
		{name: "gibbs", args: []string{"gibbs", "--samples", "20", "--target", "bivariate"}, rows: 21, cols: 2},
		{name: "slice", args: []string{"slice", "--samples", "30", "--burn-in", "5", "--thinning", "2"}, rows: 30, cols: 1},
		{name: "mala", args: []string{"mala", "--samples", "40", "--dim", "2", "--init", "random"}, rows: 41, cols: 2},
		{name: "hmc", args: []string{"hmc", "--samples", "10", "--target", "bivariate", "--rho", "-0.3"}, rows: 11, cols: 2},
		{name: "mwg", args: []string{"mwg", "--samples", "25", "--dim", "3"}, rows: 26, cols: 3},
		{name: "header", args: []string{"mh", "--samples", "5", "--dim", "2", "--header"}, rows: 7, cols: 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			records, logs, err := execute(t, test.args...)
			require.NoError(t, err)
			assert.Len(t, records, test.rows)
			for _, rec := range records {
				assert.Len(t, rec, test.cols)
			}
			assert.Contains(t, logs, "Chain complete")
		})
	}
}

func TestCommands_Output(t *testing.T) {
	records, _, err := execute(t, "mh", "--samples", "3", "--dim", "2", "--header")
	require.NoError(t, err)

	assert.Equal(t, []string{"x0", "x1"}, records[0])
	assert.Equal(t, []string{"0", "0"}, records[1])
	for _, rec := range records[1:] {
		for _, field := range rec {
			_, err := strconv.ParseFloat(field, 64)
			assert.NoError(t, err)
		}
	}

	again, _, err := execute(t, "mh", "--samples", "3", "--dim", "2", "--header")
	require.NoError(t, err)
	assert.Equal(t, records, again)
}

func TestCommands_InitMode(t *testing.T) {
	records, logs, err := execute(t, "hmc", "--samples", "5", "--dim", "2", "--init", "mode")
	require.NoError(t, err)
	assert.Len(t, records, 6)
	assert.Contains(t, logs, "Found mode")
	for _, field := range records[0] {
		x, err := strconv.ParseFloat(field, 64)
		require.NoError(t, err)
		assert.InDelta(t, 0, x, 1)
	}
}

func TestCommands_Invalid(t *testing.T) {
	var tests = []struct {
		name string
		args []string
	}{
		{name: "unknown target", args: []string{"mh", "--target", "cauchy"}},
		{name: "unknown init", args: []string{"mh", "--init", "far"}},
		{name: "bad rho", args: []string{"gibbs", "--target", "bivariate", "--rho", "1"}},
		{name: "bad dimension", args: []string{"gibbs", "--dim", "0"}},
		{name: "bad proposal", args: []string{"mh", "--proposal-sd", "0"}},
		{name: "bad width", args: []string{"slice", "--width", "-1"}},
		{name: "bad step size", args: []string{"mala", "--step-size", "0"}},
		{name: "negative samples", args: []string{"hmc", "--samples", "-1"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, logs, err := execute(t, test.args...)
			assert.Error(t, err)
			assert.NotContains(t, logs, "Error:", "errors are reported once, by main")
		})
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out, &bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "gomcmc version "+version+"\n", out.String())
}
