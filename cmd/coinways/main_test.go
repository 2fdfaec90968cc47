// Copyright 2025 go-coinways Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-coinways/ways"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { ways.SetLogger(nil) })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	for _, mode := range []string{"auto", "sequential", "parallel", "group"} {
		out, err := execute(t, "solve", "--mode", mode, "--workers", "2",
			"--target", "1000", "--max-coins", "15", "--coins", "10,50,100,500")
		require.NoError(t, err, mode)
		require.Equal(t, "20\n", out, mode)
	}
}

func TestSolveCommandDefaults(t *testing.T) {
	out, err := execute(t, "solve", "--target", "4", "--max-coins", "4", "--coins", "1,2")
	require.NoError(t, err)
	require.Equal(t, "3\n", out)

	out, err = execute(t, "solve")
	require.NoError(t, err)
	require.Equal(t, "1\n", out)
}

func TestSolveCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"zero coin", []string{"solve", "--target", "10", "--coins", "5,0"}, ways.ErrInvalidInput},
		{"negative target", []string{"solve", "--target", "-3"}, ways.ErrInvalidInput},
		{"too large", []string{"solve", "--max-cells", "100", "--target", "100", "--max-coins", "100"}, ways.ErrAllocation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.ErrorIs(t, err, tt.is)
		})
	}

	_, err := execute(t, "solve", "--mode", "simd")
	require.ErrorContains(t, err, "unknown mode")

	_, err = execute(t, "solve", "--coins", "1,x")
	require.Error(t, err)
}

func TestVerifyCommand(t *testing.T) {
	out, err := execute(t, "verify", "--target", "12", "--max-coins", "6", "--coins", "1,2,3,5")
	require.NoError(t, err)
	require.NotContains(t, out, "MISMATCH")
	require.Contains(t, out, "brute-force")
	require.Equal(t, 5, strings.Count(out, "\n"))

	_, err = execute(t, "verify", "--target", "100000", "--coins", "1")
	require.Error(t, err)
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--runs", "1", "--target", "500", "--max-coins", "20", "--coins", "10,50,100")
	require.NoError(t, err)
	require.Contains(t, out, "Consistency: OK")
	for _, name := range []string{"sequential", "parallel", "group", "k-major"} {
		require.Contains(t, out, name)
	}
}

func TestPrintBenchInconsistent(t *testing.T) {
	var out bytes.Buffer
	err := printBench(&out, &problem{}, []benchResult{
		{name: "sequential", count: 1},
		{name: "k-major", count: 2},
	})
	require.Error(t, err)
	require.Contains(t, out.String(), "Consistency: FAIL")
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	require.Contains(t, out, "mode:")
	require.Contains(t, out, ways.CurrentName())
	require.Contains(t, out, "cache line:")
}

func TestWasmCommand(t *testing.T) {
	// (module (func (export "answer") (result i64) i64.const 42))
	wasm := []byte{
		0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
		0x01, 0x05, 0x01, 0x60, 0x00, 0x01, 0x7e,
		0x03, 0x02, 0x01, 0x00,
		0x07, 0x0a, 0x01, 0x06, 'a', 'n', 's', 'w', 'e', 'r', 0x00, 0x00,
		0x0a, 0x06, 0x01, 0x04, 0x00, 0x42, 0x2a, 0x0b,
	}
	path := filepath.Join(t.TempDir(), "answer.wasm")
	require.NoError(t, os.WriteFile(path, wasm, 0o644))

	out, err := execute(t, "wasm", "--module", path, "--func", "answer")
	require.NoError(t, err)
	require.Equal(t, "42\n", out)

	_, err = execute(t, "wasm")
	require.ErrorContains(t, err, "--module")
}

func TestParseInts(t *testing.T) {
	got, err := parseInts(" 10, 50,,100 ,")
	require.NoError(t, err)
	require.Equal(t, []int64{10, 50, 100}, got)

	got, err = parseInts("")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = parseInts("1,a,2,b")
	require.ErrorContains(t, err, `"a"`)
	require.ErrorContains(t, err, `"b"`)
}

func TestInteractiveModel(t *testing.T) {
	s := ways.New(ways.WithFolder(ways.SequentialFolder{}))
	m := newInteractiveModel(s)

	p, err := m.problem()
	require.NoError(t, err)
	require.Equal(t, &problem{target: 1000, maxCoins: 15, coins: []int64{10, 50, 100, 500}}, p)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m = next.(interactiveModel)
	require.True(t, m.running)
	require.Contains(t, m.View(), "Computing")

	next, _ = m.Update(cmd())
	m = next.(interactiveModel)
	require.False(t, m.running)
	require.NoError(t, m.result.err)
	require.Equal(t, uint64(20), m.result.count)
	require.Contains(t, m.View(), "Combinations: 20")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(interactiveModel)
	require.Equal(t, 1, m.focusIdx)

	m.inputs[2].SetValue("10,0")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(interactiveModel)
	require.ErrorIs(t, m.err, ways.ErrInvalidInput)
	require.Contains(t, m.View(), "Error:")
}
