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

package wasmhost

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/ajroetker/go-coinways/ways"
)

// guestWasm is a module that exports one page of memory and
//
//	(func (export "run") (param i64 i64 i32 i32) (result i64)
//	  local.get 0 local.get 1 local.get 2 local.get 3
//	  call $coinways.solve)
var guestWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	// type: (i64 i64 i32 i32) -> i64
	0x01, 0x09, 0x01, 0x60, 0x04, 0x7e, 0x7e, 0x7f, 0x7f, 0x01, 0x7e,
	// import "coinways" "solve" (func type 0)
	0x02, 0x12, 0x01,
	0x08, 'c', 'o', 'i', 'n', 'w', 'a', 'y', 's',
	0x05, 's', 'o', 'l', 'v', 'e',
	0x00, 0x00,
	// function: one body of type 0
	0x03, 0x02, 0x01, 0x00,
	// memory: min 1 page
	0x05, 0x03, 0x01, 0x00, 0x01,
	// export "memory" (mem 0), "run" (func 1)
	0x07, 0x10, 0x02,
	0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
	0x03, 'r', 'u', 'n', 0x00, 0x01,
	// code
	0x0a, 0x0e, 0x01, 0x0c, 0x00,
	0x20, 0x00, 0x20, 0x01, 0x20, 0x02, 0x20, 0x03,
	0x10, 0x00,
	0x0b,
}

// memoryOnlyWasm is (module (memory (export "memory") 1)).
var memoryOnlyWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x0a, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
}

func newGuest(t *testing.T, solver *ways.Solver) (context.Context, api.Module) {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { rt.Close(ctx) })

	_, err := Instantiate(ctx, rt, solver)
	require.NoError(t, err)

	mod, err := rt.InstantiateWithConfig(ctx, guestWasm, wazero.NewModuleConfig().WithName("guest"))
	require.NoError(t, err)
	return ctx, mod
}

func writeCoins(t *testing.T, mem api.Memory, offset uint32, coins []int64) {
	t.Helper()
	for i, c := range coins {
		require.True(t, mem.WriteUint64Le(offset+uint32(i*8), uint64(c)))
	}
}

func TestGuestCallsSolve(t *testing.T) {
	tests := []struct {
		target, maxCoins int64
		coins            []int64
		want             uint64
	}{
		{100, 10, []int64{10, 50, 100}, 4},
		{1000, 15, []int64{10, 50, 100, 500}, 20},
		{4, 4, []int64{1, 2}, 3},
		{0, 3, nil, 1},
	}
	for _, tt := range tests {
		ctx, mod := newGuest(t, nil)
		writeCoins(t, mod.Memory(), 64, tt.coins)

		res, err := mod.ExportedFunction("run").Call(ctx,
			api.EncodeI64(tt.target), api.EncodeI64(tt.maxCoins),
			api.EncodeU32(64), api.EncodeU32(uint32(len(tt.coins))))
		require.NoError(t, err)
		require.Equal(t, tt.want, res[0], "solve(%d, %d, %v)", tt.target, tt.maxCoins, tt.coins)
	}
}

func TestGuestWithParallelSolver(t *testing.T) {
	f, closeFn, err := ways.NewFolder(ways.ModeParallel, 2)
	require.NoError(t, err)
	defer closeFn()

	ctx, mod := newGuest(t, ways.New(ways.WithFolder(f)))
	writeCoins(t, mod.Memory(), 0, []int64{10, 50, 100})

	res, err := mod.ExportedFunction("run").Call(ctx, 100, 10, 0, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(4), res[0])
}

func TestGuestTraps(t *testing.T) {
	tests := []struct {
		name   string
		params []uint64
		coins  []int64
	}{
		{"zero coin", []uint64{api.EncodeI64(10), 3, 0, 2}, []int64{5, 0}},
		{"negative target", []uint64{api.EncodeI64(-1), 3, 0, 1}, []int64{5}},
		{"out of bounds", []uint64{10, 3, api.EncodeU32(65536 - 8), 2}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, mod := newGuest(t, nil)
			writeCoins(t, mod.Memory(), 0, tt.coins)

			_, err := mod.ExportedFunction("run").Call(ctx, tt.params...)
			require.Error(t, err)
		})
	}
}

func TestGuestAllocationLimit(t *testing.T) {
	ctx, mod := newGuest(t, ways.New(ways.WithFolder(ways.SequentialFolder{}), ways.WithMaxCells(10)))
	_, err := mod.ExportedFunction("run").Call(ctx, 100, 100, 0, 0)
	require.Error(t, err)
}

func TestReadCoins(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	mod, err := rt.Instantiate(ctx, memoryOnlyWasm)
	require.NoError(t, err)
	mem := mod.Memory()
	writeCoins(t, mem, 16, []int64{7, -3, 1 << 40})

	coins, err := ReadCoins(mem, 16, 3)
	require.NoError(t, err)
	require.Equal(t, []int64{7, -3, 1 << 40}, coins)

	coins, err = ReadCoins(nil, 0, 0)
	require.NoError(t, err)
	require.Empty(t, coins)

	_, err = ReadCoins(nil, 0, 1)
	require.Error(t, err)

	_, err = ReadCoins(mem, mem.Size()-4, 1)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	res, err := Run(ctx, guestWasm, "run", nil, 0, 5, 0, 0)
	require.NoError(t, err)
	require.Equal(t, []uint64{1}, res)

	res, err = Run(ctx, guestWasm, "run", nil, 3, 5, 0, 0)
	require.NoError(t, err)
	require.Equal(t, []uint64{0}, res)

	_, err = Run(ctx, guestWasm, "missing", nil)
	require.ErrorContains(t, err, "does not export")

	_, err = Run(ctx, []byte("not wasm"), "run", nil)
	require.Error(t, err)
}
