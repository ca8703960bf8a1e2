// Copyright 2023 ColumnForge
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package colexec

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/columnforge/vecengine/pkg/common/moerr"
	"github.com/columnforge/vecengine/pkg/config"
	"github.com/columnforge/vecengine/pkg/container/vector"
	"github.com/columnforge/vecengine/pkg/logutil"
)

// Request is one evaluation call: an operation name plus its ordered
// input columns.
type Request struct {
	Op     string
	Inputs []*vector.Vector
}

// Engine evaluates requests under a configured row cap, fanning
// independent requests out over a goroutine pool. The operation registry
// is read-only and columns are immutable, so requests share nothing and
// need no locks.
type Engine struct {
	pool         *ants.Pool
	maxBatchRows int
	logger       *zap.Logger
}

// NewEngine builds an engine from parameters. Close must be called to
// release the pool.
func NewEngine(params *config.EngineParameters) (*Engine, error) {
	params.SetDefaultValues()
	pool, err := ants.NewPool(int(params.EvalParallelism))
	if err != nil {
		return nil, moerr.NewInternal("cannot build worker pool: %v", err)
	}
	logger := logutil.GetGlobalLogger().Named("colexec")
	logger.Debug("engine up",
		zap.Int64("parallelism", params.EvalParallelism),
		zap.Int64("maxBatchRows", params.MaxBatchRows))
	return &Engine{
		pool:         pool,
		maxBatchRows: int(params.MaxBatchRows),
		logger:       logger,
	}, nil
}

func (e *Engine) Close() {
	e.pool.Release()
}

// Evaluate runs one request synchronously.
func (e *Engine) Evaluate(name string, ivecs []*vector.Vector) (*vector.Vector, error) {
	for _, v := range ivecs {
		if v.Length() > e.maxBatchRows {
			return nil, moerr.NewInvalidInput(
				"batch of %d rows exceeds the configured cap of %d", v.Length(), e.maxBatchRows)
		}
	}
	rvec, err := Evaluate(name, ivecs)
	if err != nil {
		e.logger.Error("evaluation failed", zap.String("op", name), zap.Error(err))
		return nil, err
	}
	return rvec, nil
}

// EvaluateMany runs independent requests concurrently on the pool and
// returns the outputs in request order. The first failure wins; the
// remaining requests still run to completion. Cancellation is honored
// between requests only, never mid-kernel.
func (e *Engine) EvaluateMany(ctx context.Context, reqs []Request) ([]*vector.Vector, error) {
	results := make([]*vector.Vector, len(reqs))
	errs := make([]error, len(reqs))

	var wg sync.WaitGroup
	for i := range reqs {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			break
		}
		i := i
		wg.Add(1)
		if err := e.pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = e.Evaluate(reqs[i].Op, reqs[i].Inputs)
		}); err != nil {
			wg.Done()
			errs[i] = moerr.NewInternal("cannot schedule request: %v", err)
			break
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
