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

// Package wasmhost exposes the counting kernel to WebAssembly guests as a
// wazero host module.
//
// Guests import:
//
//	(import "coinways" "solve"
//	  (func (param $target i64) (param $max_coins i64)
//	        (param $coins_ptr i32) (param $coins_len i32)
//	        (result i64)))
//
// coins_ptr points at coins_len little-endian i64 values in the guest's
// exported memory. Invalid input or a kernel failure traps the guest.
package wasmhost

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/ajroetker/go-coinways/ways"
)

const (
	// ModuleName is the import module guests use.
	ModuleName = "coinways"
	// FunctionName is the exported host function.
	FunctionName = "solve"
)

// host binds a Solver to the host function.
type host struct {
	solver *ways.Solver
	logger *zap.Logger
}

// Instantiate registers the coinways host module in rt. A nil solver means a
// sequential Solver: the call already runs on the guest's thread.
func Instantiate(ctx context.Context, rt wazero.Runtime, solver *ways.Solver) (api.Module, error) {
	if solver == nil {
		solver = ways.New(ways.WithFolder(ways.SequentialFolder{}))
	}
	h := &host{solver: solver, logger: ways.Logger().Named("wasmhost")}

	return rt.NewHostModuleBuilder(ModuleName).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(h.solve),
			[]api.ValueType{api.ValueTypeI64, api.ValueTypeI64, api.ValueTypeI32, api.ValueTypeI32},
			[]api.ValueType{api.ValueTypeI64}).
		WithParameterNames("target", "max_coins", "coins_ptr", "coins_len").
		WithResultNames("count").
		Export(FunctionName).
		Instantiate(ctx)
}

// solve is the host function. Errors panic so wazero turns them into a trap
// returned from the guest's Call.
func (h *host) solve(_ context.Context, m api.Module, stack []uint64) {
	count, err := h.call(m.Memory(), stack)
	if err != nil {
		h.logger.Debug("solve trapped", zap.String("caller", m.Name()), zap.Error(err))
		panic(err)
	}
	stack[0] = count
}

func (h *host) call(mem api.Memory, stack []uint64) (uint64, error) {
	target := int64(stack[0])
	maxCoins := int64(stack[1])
	ptr := api.DecodeU32(stack[2])
	n := api.DecodeU32(stack[3])

	coins, err := ReadCoins(mem, ptr, n)
	if err != nil {
		return 0, err
	}
	if err := ways.ValidateInputs(target, maxCoins, coins); err != nil {
		return 0, err
	}
	return h.solver.Solve(int(target), int(maxCoins), coins)
}

// ReadCoins decodes n little-endian i64 values starting at ptr in mem.
func ReadCoins(mem api.Memory, ptr, n uint32) ([]int64, error) {
	if n == 0 {
		return nil, nil
	}
	if mem == nil {
		return nil, fmt.Errorf("wasmhost: caller exports no memory")
	}
	size := uint64(n) * 8
	if size > math.MaxUint32 {
		return nil, fmt.Errorf("wasmhost: %d coins exceed 32-bit memory", n)
	}
	buf, ok := mem.Read(ptr, uint32(size))
	if !ok {
		return nil, fmt.Errorf("wasmhost: coins [%d, %d) out of memory bounds (%d bytes)",
			ptr, uint64(ptr)+size, mem.Size())
	}

	coins := make([]int64, n)
	for i := range coins {
		coins[i] = int64(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return coins, nil
}

// Run instantiates wasm against a fresh runtime that has the coinways host
// module, calls the exported function fn with params and returns its
// results.
func Run(ctx context.Context, wasm []byte, fn string, solver *ways.Solver, params ...uint64) ([]uint64, error) {
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	if _, err := Instantiate(ctx, rt, solver); err != nil {
		return nil, fmt.Errorf("instantiate host module: %w", err)
	}

	compiled, err := rt.CompileModule(ctx, wasm)
	if err != nil {
		return nil, fmt.Errorf("compile guest: %w", err)
	}
	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("guest"))
	if err != nil {
		return nil, fmt.Errorf("instantiate guest: %w", err)
	}
	defer mod.Close(ctx)

	f := mod.ExportedFunction(fn)
	if f == nil {
		return nil, fmt.Errorf("guest does not export %q", fn)
	}
	results, err := f.Call(ctx, params...)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", fn, err)
	}
	return results, nil
}
